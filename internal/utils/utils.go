package utils

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// ImageTypes is the extension allow-list for thumbnail streaming.
var ImageTypes = []string{
	".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg", ".bmp", ".ico",
}

func Exists(file string) bool {
	_, err := os.Stat(file)
	return err == nil
}

func IsImage(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, it := range ImageTypes {
		if ext == it {
			return true
		}
	}
	return false
}

func HumanSize(size int64) string {
	if size == 0 {
		return "0"
	}
	sizes := []string{"B", "K", "M", "G"}
	i := int(math.Floor(math.Log(float64(size)) / math.Log(1024)))
	return fmt.Sprintf("%.1f %s", float64(size)/math.Pow(1024, float64(i)), sizes[i])
}

func IsSudo() bool {
	return os.Geteuid() == 0
}
