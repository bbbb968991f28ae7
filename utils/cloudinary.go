package utils

import (
	"context"
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/joho/godotenv"
)

// InitCloudinary initializes the Cloudinary client
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"))
	if err != nil {
		return nil, err
	}
	return cld, nil
}

// UploadToCloudinary uploads a shop logo and returns the secure URL
func UploadToCloudinary(file interface{}, publicID string, folder string) (string, error) {
	cld, err := InitCloudinary()
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	uploadParams := uploader.UploadParams{
		PublicID:       publicID,
		Folder:         folder,
		UploadPreset:   os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
		Transformation: "c_thumb,w_400,h_400", // logos rendered small in the booking page
	}

	resp, err := cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
