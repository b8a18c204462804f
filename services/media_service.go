package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MediaService uploads product and blog imagery to Cloudinary.
type MediaService struct {
	cld *cloudinary.Cloudinary
}

// NewMediaService returns nil when the Cloudinary credentials are unset;
// admin image upload is then disabled and product payloads carry URLs only.
func NewMediaService() *MediaService {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		log.Println("⚠️  Cloudinary credentials not set, image upload disabled")
		return nil
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		log.Printf("❌ failed to init Cloudinary, image upload disabled: %v", err)
		return nil
	}
	return &MediaService{cld: cld}
}

// Enabled reports whether uploads can be served.
func (s *MediaService) Enabled() bool {
	return s != nil && s.cld != nil
}

// UploadImage pushes a single image and returns its secure URL.
func (s *MediaService) UploadImage(ctx context.Context, file multipart.File, filename, folder string) (string, error) {
	// The SDK wants pointer booleans here.
	unique := true
	overwrite := false
	params := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if filename != "" {
		params.PublicID = filename
	}

	result, err := s.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload succeeded but no URL returned")
	}
	return result.SecureURL, nil
}

// UploadImages pushes each file in order and returns their URLs.
func (s *MediaService) UploadImages(ctx context.Context, files []*multipart.FileHeader, folder string) ([]string, error) {
	var urls []string
	for i, header := range files {
		file, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open file %s: %w", header.Filename, err)
		}

		url, err := s.UploadImage(ctx, file, fmt.Sprintf("%s_%d", header.Filename, i), folder)
		file.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// DeleteImage removes an uploaded image by public id.
func (s *MediaService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}
