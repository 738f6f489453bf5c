// Package storage archives finalized estimates to S3-compatible object
// storage via MinIO.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"buildsmart_backend/internal/engine/domain"
	"buildsmart_backend/internal/estimates/repository"
	"buildsmart_backend/internal/estimates/service"
)

// MinIOArchive stores estimate snapshots as JSON documents, one object per
// estimate.
type MinIOArchive struct {
	client *minio.Client
	bucket string
}

// NewMinIOArchive creates the archive client.
func NewMinIOArchive(endpoint, accessKey, secretKey string, useSSL bool, bucket string) (*MinIOArchive, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &MinIOArchive{
		client: client,
		bucket: bucket,
	}, nil
}

// Compile-time check that MinIOArchive implements the estimates archiver.
var _ service.Archiver = (*MinIOArchive)(nil)

// EnsureBucket creates the archive bucket if it doesn't exist. Called once
// at startup.
func (a *MinIOArchive) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", a.bucket, err)
		}
	}
	return nil
}

// archiveDocument is the stored snapshot shape. Kept self-contained so an
// archived estimate is readable without database access.
type archiveDocument struct {
	EstimateID     string        `json:"estimateId"`
	ConversationID string        `json:"conversationId"`
	ShareToken     string        `json:"shareToken"`
	Summary        string        `json:"summary"`
	State          domain.State  `json:"state"`
	Totals         domain.Totals `json:"totals"`
	ArchivedAt     time.Time     `json:"archivedAt"`
}

// ArchiveEstimate uploads the estimate snapshot to the archive bucket.
func (a *MinIOArchive) ArchiveEstimate(ctx context.Context, est repository.Estimate) error {
	doc := archiveDocument{
		EstimateID:     est.ID.String(),
		ConversationID: est.ConversationID.String(),
		ShareToken:     est.ShareToken,
		Summary:        est.Summary,
		State:          est.State,
		Totals: domain.Totals{
			ProductsCost: est.ProductsCost,
			LaborCost:    est.LaborCost,
			Tax:          est.Tax,
			Total:        est.Total,
		},
		ArchivedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal archive document: %w", err)
	}

	key := fmt.Sprintf("estimates/%s.json", est.ID)
	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("upload archive %s: %w", key, err)
	}
	return nil
}
