package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"gestor-backend/internal/store"
)

// BackupConfig carries the S3-compatible target for snapshots. Works with
// AWS S3 and Cloudflare R2 alike; Endpoint stays empty for plain S3.
type BackupConfig struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Interval  time.Duration
}

// BackupService snapshots the whole store into a single JSON object in an
// S3-compatible bucket and can restore from any snapshot.
type BackupService struct {
	store  store.Store
	config BackupConfig
}

func NewBackupService(s store.Store, cfg BackupConfig) *BackupService {
	return &BackupService{store: s, config: cfg}
}

func (s *BackupService) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.AccessKey,
			s.config.SecretKey,
			"",
		)),
		awsconfig.WithRegion(s.config.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to configure backup client: %w", err)
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.config.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.config.Endpoint)
		}
	}), nil
}

// snapshot collects every namespace key into one document. Missing keys
// are simply absent from the snapshot.
func (s *BackupService) snapshot(ctx context.Context) ([]byte, error) {
	doc := map[string]json.RawMessage{}
	for _, key := range store.Keys {
		data, err := s.store.Get(ctx, key)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s for snapshot: %w", key, err)
		}
		doc[key] = json.RawMessage(data)
	}
	return json.Marshal(doc)
}

// Backup uploads a timestamped snapshot and returns its object key.
func (s *BackupService) Backup(ctx context.Context) (string, error) {
	client, err := s.client(ctx)
	if err != nil {
		return "", err
	}

	data, err := s.snapshot(ctx)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("snapshots/gestor_%s.json", time.Now().Format("20060102_150405"))
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot: %w", err)
	}

	log.Printf("[Backup] Uploaded snapshot %s (%d bytes)", key, len(data))
	return key, nil
}

// ListSnapshots returns available snapshot keys, newest first.
func (s *BackupService) ListSnapshots(ctx context.Context) ([]string, error) {
	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	result, err := client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.config.Bucket),
		Prefix: aws.String("snapshots/"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	keys := []string{}
	for _, obj := range result.Contents {
		if obj.Key != nil {
			keys = append(keys, *obj.Key)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys, nil
}

// Restore downloads a snapshot and writes every contained key back into
// the store, overwriting current data.
func (s *BackupService) Restore(ctx context.Context, snapshotKey string) error {
	client, err := s.client(ctx)
	if err != nil {
		return err
	}

	result, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(snapshotKey),
	})
	if err != nil {
		return fmt.Errorf("failed to fetch snapshot %s: %w", snapshotKey, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return fmt.Errorf("failed to read snapshot body: %w", err)
	}

	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("snapshot %s is not valid JSON: %w", snapshotKey, err)
	}

	for key, value := range doc {
		if err := s.store.Set(ctx, key, value); err != nil {
			return fmt.Errorf("failed to restore %s: %w", key, err)
		}
	}

	log.Printf("[Backup] Restored %d keys from %s", len(doc), snapshotKey)
	return nil
}

// Run triggers a backup on every tick until the context is cancelled.
// Failures are logged and the schedule keeps going.
func (s *BackupService) Run(ctx context.Context) {
	interval := s.config.Interval
	if interval <= 0 {
		interval = 6 * time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("[Backup] Scheduler started, interval %s", interval)
	for {
		select {
		case <-ctx.Done():
			log.Println("[Backup] Scheduler stopped")
			return
		case <-ticker.C:
			backupCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			if _, err := s.Backup(backupCtx); err != nil {
				log.Printf("[Backup] Scheduled backup failed: %v", err)
			}
			cancel()
		}
	}
}
