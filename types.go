package portfolio

import "time"

// BlogPost is the core content type stored in SQLite and served by the
// blog endpoints.
type BlogPost struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Content       string        `json:"content"`
	Excerpt       string        `json:"excerpt"`
	Author        string        `json:"author"`
	Category      string        `json:"category"`
	Tags          []string      `json:"tags"`
	FeaturedImage string        `json:"featured_image,omitempty"`
	FeaturedVideo string        `json:"featured_video,omitempty"`
	AcademicInfo  *AcademicInfo `json:"academic_info,omitempty"`
	Published     bool          `json:"published"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	ReadingTime   int           `json:"reading_time"`
}

// AcademicInfo marks a post as an academic publication. It is
// synthesized from the paper_type field on write, never entered
// directly.
type AcademicInfo struct {
	Type        string `json:"type"`
	Institution string `json:"institution"`
	Field       string `json:"field"`
}

// PostSummary is the listing shape of a BlogPost: everything except
// the full body.
type PostSummary struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Excerpt       string        `json:"excerpt"`
	Author        string        `json:"author"`
	Category      string        `json:"category"`
	Tags          []string      `json:"tags"`
	FeaturedImage string        `json:"featured_image,omitempty"`
	FeaturedVideo string        `json:"featured_video,omitempty"`
	AcademicInfo  *AcademicInfo `json:"academic_info,omitempty"`
	Published     bool          `json:"published"`
	CreatedAt     time.Time     `json:"created_at"`
	ReadingTime   int           `json:"reading_time"`
}

// Summary strips the post body for listing responses.
func (p BlogPost) Summary() PostSummary {
	return PostSummary{
		ID:            p.ID,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		Author:        p.Author,
		Category:      p.Category,
		Tags:          p.Tags,
		FeaturedImage: p.FeaturedImage,
		FeaturedVideo: p.FeaturedVideo,
		AcademicInfo:  p.AcademicInfo,
		Published:     p.Published,
		CreatedAt:     p.CreatedAt,
		ReadingTime:   p.ReadingTime,
	}
}

// PostFilter selects posts for listing. The zero value lists every
// published post, newest first. IncludeUnpublished is the capability
// flag distinguishing admin reads from public ones.
type PostFilter struct {
	Category           string
	Search             string
	Limit              int
	IncludeUnpublished bool
}

// MediaAsset is an uploaded file tracked in the media library.
type MediaAsset struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	Path         string    `json:"path"`
	FileType     string    `json:"file_type"` // "image" or "video"
	Category     string    `json:"category"`
	Size         int64     `json:"size"`
	Description  string    `json:"description,omitempty"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
