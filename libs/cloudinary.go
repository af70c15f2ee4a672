package libs

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func newCloudinary() (*cloudinary.Cloudinary, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName != "" && apiKey != "" && apiSecret != "" {
		return cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	}

	cldURL := os.Getenv("CLOUDINARY_URL")
	if cldURL == "" {
		return nil, fmt.Errorf("cloudinary environment variables not set")
	}
	return cloudinary.NewFromURL(cldURL)
}

// UploadBookCover pushes a locally stored cover to cloudinary. Returns an
// error when cloudinary is not configured so callers can keep the local
// copy instead.
func UploadBookCover(localPath string) (string, error) {
	cld, err := newCloudinary()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(localPath); err != nil {
		return "", err
	}

	resp, err := cld.Upload.Upload(context.Background(), localPath, uploader.UploadParams{
		PublicID: fmt.Sprintf("cover_%d", time.Now().UnixNano()),
		Folder:   "book-covers",
	})
	if err != nil {
		return "", err
	}
	if resp == nil || (resp.SecureURL == "" && resp.URL == "") {
		return "", fmt.Errorf("cloudinary returned an empty upload result")
	}

	if resp.SecureURL != "" {
		return resp.SecureURL, nil
	}
	return resp.URL, nil
}

// PublicIDFromURL extracts the public ID from a cloudinary delivery URL,
// dropping the version segment and file extension.
func PublicIDFromURL(rawURL string) string {
	parts := strings.SplitN(rawURL, "/upload/", 2)
	if len(parts) != 2 {
		return ""
	}
	id := parts[1]
	if i := strings.Index(id, "/"); i > 0 && strings.HasPrefix(id[:i], "v") {
		id = id[i+1:]
	}
	if i := strings.LastIndex(id, "."); i > 0 {
		id = id[:i]
	}
	return id
}

func DeleteBookCover(publicID string) error {
	cld, err := newCloudinary()
	if err != nil {
		return err
	}

	result, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return err
	}
	if result.Result != "ok" {
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}
	return nil
}
