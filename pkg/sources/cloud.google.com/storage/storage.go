package storage

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type Source struct {
	// bucketName defines the name of the bucket to retrieve files from
	bucketName string
	// client defines the component which will retrieve files from a gcloud bucket
	client *storage.Client
}

// NewSource creates a Source given the google cloud bucket's name. Additional
// client options (such as an alternate endpoint) are appended to the defaults.
func NewSource(ctx context.Context, bucketName string, opts ...option.ClientOption) (*Source, error) {
	opts = append([]option.ClientOption{option.WithoutAuthentication()}, opts...)
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return &Source{}, err
	}
	s := &Source{
		bucketName: bucketName,
		client:     client,
	}
	return s, nil
}

// Bucket returns the name of the bucket this Source reads from
func (s *Source) Bucket() string {
	return s.bucketName
}

// DownloadObject streams the named object into the file at dest, creating or truncating it
func (s *Source) DownloadObject(ctx context.Context, name, dest string) error {
	objReader, err := s.client.Bucket(s.bucketName).Object(name).NewReader(ctx)
	if err != nil {
		return fmt.Errorf("failed to create reader for object '%s': %w", name, err)
	}
	defer func() {
		closeErr := objReader.Close()
		if closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close reader for object '%s': %v\n", name, closeErr)
		}
	}()

	file, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create file '%s': %w", dest, err)
	}
	defer func() {
		closeErr := file.Close()
		if closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close '%s': %v\n", dest, closeErr)
		}
	}()

	_, err = file.ReadFrom(objReader)
	if err != nil {
		return fmt.Errorf("failed to read object '%s' from bucket '%s': %w", name, s.bucketName, err)
	}
	return nil
}

// Close releases the underlying client
func (s *Source) Close() error {
	return s.client.Close()
}
