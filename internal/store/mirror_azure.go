package store

import (
	"context"
	"fmt"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/MKhiriev/billiard-pos/internal/config"
)

type azureUploadAPI interface {
	UploadFile(ctx context.Context, containerName string, blobName string, file *os.File, o *azblob.UploadFileOptions) (azblob.UploadFileResponse, error)
}

type azureBlobMirror struct {
	client    azureUploadAPI
	container string
	prefix    string
}

// NewAzureBlobMirror creates an Azure Blob mirror. A configured account key
// selects shared key authentication, otherwise the default Azure credential
// chain (environment, managed identity, CLI) is used.
func NewAzureBlobMirror(cfg config.Mirror) (UploadMirror, error) {
	var (
		client *azblob.Client
		err    error
	)
	if cfg.AccountKey != "" {
		credential, credErr := azblob.NewSharedKeyCredential(cfg.AccountName, cfg.AccountKey)
		if credErr != nil {
			return nil, fmt.Errorf("build shared key credential: %w", credErr)
		}
		client, err = azblob.NewClientWithSharedKeyCredential(cfg.AccountURL, credential, nil)
	} else {
		credential, credErr := azidentity.NewDefaultAzureCredential(nil)
		if credErr != nil {
			return nil, fmt.Errorf("build default azure credential: %w", credErr)
		}
		client, err = azblob.NewClient(cfg.AccountURL, credential, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("create blob client: %w", err)
	}

	return &azureBlobMirror{
		client:    client,
		container: cfg.Container,
		prefix:    cfg.Prefix,
	}, nil
}

func (m *azureBlobMirror) Name() string {
	return config.MirrorAzure
}

func (m *azureBlobMirror) Put(ctx context.Context, key, contentType, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	_, err = m.client.UploadFile(ctx, m.container, mirrorKey(m.prefix, key), file, &azblob.UploadFileOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
	})
	if err != nil {
		return fmt.Errorf("azure upload file: %w", err)
	}
	return nil
}
