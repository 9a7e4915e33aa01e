// Package category maps filenames to the fixed set of storage buckets.
package category

import (
	"path/filepath"
	"strings"
)

// Category is one of the six top-level storage buckets.
type Category string

const (
	Images    Category = "images"
	Documents Category = "documents"
	Archives  Category = "archives"
	Videos    Category = "videos"
	Audio     Category = "audio"
	Others    Category = "others"
)

// All returns the categories in their canonical order.
func All() []Category {
	return []Category{Images, Documents, Archives, Videos, Audio, Others}
}

// Parse returns the category named by s, or false if s is not a recognized name.
func Parse(s string) (Category, bool) {
	switch Category(s) {
	case Images, Documents, Archives, Videos, Audio, Others:
		return Category(s), true
	}
	return "", false
}

func (c Category) String() string {
	return string(c)
}

// extensions is the static extension-to-category table. Never mutated after init.
var extensions = map[string]Category{
	"jpg":  Images,
	"jpeg": Images,
	"png":  Images,
	"gif":  Images,
	"webp": Images,
	"svg":  Images,
	"bmp":  Images,
	"ico":  Images,

	"pdf":  Documents,
	"doc":  Documents,
	"docx": Documents,
	"txt":  Documents,
	"rtf":  Documents,
	"xls":  Documents,
	"xlsx": Documents,
	"ppt":  Documents,
	"pptx": Documents,
	"odt":  Documents,
	"ods":  Documents,
	"odp":  Documents,
	"csv":  Documents,
	"md":   Documents,

	"zip": Archives,
	"rar": Archives,
	"7z":  Archives,
	"tar": Archives,
	"gz":  Archives,
	"bz2": Archives,
	"xz":  Archives,

	"mp4":  Videos,
	"mkv":  Videos,
	"avi":  Videos,
	"mov":  Videos,
	"webm": Videos,
	"wmv":  Videos,
	"flv":  Videos,
	"m4v":  Videos,

	"mp3":  Audio,
	"wav":  Audio,
	"flac": Audio,
	"aac":  Audio,
	"ogg":  Audio,
	"wma":  Audio,
	"m4a":  Audio,
}

// Classify returns the category for a filename based on its extension.
// Unknown or missing extensions fall back to Others.
func Classify(filename string) Category {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if cat, ok := extensions[ext]; ok {
		return cat
	}
	return Others
}
