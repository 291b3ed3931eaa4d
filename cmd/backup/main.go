// Command backup archives the sqlite databases and uploads directory to
// S3-compatible storage and rotates old archives.
package main

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type backupConfig struct {
	DataDir    string `env:"DATA_DIR" envDefault:"data"`
	UploadsDir string `env:"UPLOADS_DIR" envDefault:"uploads"`

	Bucket    string `env:"BACKUP_S3_BUCKET,required"`
	Endpoint  string `env:"BACKUP_S3_ENDPOINT,required"`
	AccessKey string `env:"BACKUP_S3_ACCESS_KEY,required"`
	SecretKey string `env:"BACKUP_S3_SECRET_KEY,required"`
	Region    string `env:"BACKUP_S3_REGION,required"`

	KeepBackups int `env:"KEEP_BACKUPS" envDefault:"4"`
}

func main() {
	log.Println("starting backup...")

	_ = godotenv.Load()
	var cfg backupConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("config error: %v", err)
	}

	archive, err := createArchive(cfg.DataDir, cfg.UploadsDir)
	if err != nil {
		log.Fatalf("archive error: %v", err)
	}

	client, err := createS3Client(cfg)
	if err != nil {
		log.Fatalf("s3 client error: %v", err)
	}

	key := fmt.Sprintf("backup-%s.tar.gz", time.Now().UTC().Format("2006-01-02T15-04-05Z"))
	if err := upload(client, cfg.Bucket, key, archive); err != nil {
		log.Fatalf("upload error: %v", err)
	}
	log.Printf("uploaded s3://%s/%s (%d bytes)", cfg.Bucket, key, len(archive))

	if err := rotate(client, cfg.Bucket, cfg.KeepBackups); err != nil {
		log.Fatalf("rotation error: %v", err)
	}

	log.Println("backup complete")
}

// createArchive builds a gzipped tarball of the given directories.
// Missing directories are skipped so a fresh deployment can still back
// up what it has.
func createArchive(dirs ...string) ([]byte, error) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			log.Printf("skipping missing directory %s", dir)
			continue
		}
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.Mode().IsRegular() {
				return nil
			}
			hdr, err := tar.FileInfoHeader(info, "")
			if err != nil {
				return err
			}
			hdr.Name = filepath.ToSlash(path)
			if err := tw.WriteHeader(hdr); err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			_, err = io.Copy(tw, f)
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	if err := tw.Close(); err != nil {
		return nil, err
	}
	if err := gw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func createS3Client(cfg backupConfig) (*s3.Client, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{URL: cfg.Endpoint}, nil
	})

	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		config.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(awsCfg), nil
}

func upload(client *s3.Client, bucket, key string, data []byte) error {
	_, err := client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	return err
}

// rotate deletes all but the keep newest objects in the bucket.
func rotate(client *s3.Client, bucket string, keep int) error {
	output, err := client.ListObjectsV2(context.TODO(), &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return err
	}
	if len(output.Contents) <= keep {
		return nil
	}

	sort.Slice(output.Contents, func(i, j int) bool {
		return output.Contents[i].LastModified.After(*output.Contents[j].LastModified)
	})

	for _, obj := range output.Contents[keep:] {
		log.Printf("deleting old backup %s", *obj.Key)
		_, err := client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
			Bucket: aws.String(bucket),
			Key:    obj.Key,
		})
		if err != nil {
			log.Printf("delete %s failed: %v", *obj.Key, err)
		}
	}
	return nil
}
