// workers/backup_worker.go
package workers

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"elo-board-system/models"
	"elo-board-system/utils"
)

// BackupClient bundles what the backup loop needs to export the container.
type BackupClient struct {
	Container *models.GameContainer
}

func NewBackupClient(container *models.GameContainer) *BackupClient {
	return &BackupClient{Container: container}
}

// PollBackups uploads a timestamped JSON snapshot of the container to R2 on
// every tick until the context is cancelled.
func PollBackups(ctx context.Context, client *BackupClient, pollInterval time.Duration) {
	log.Println("Starting R2 backup polling...")

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("R2 backup polling stopped.")
			return
		case <-ticker.C:
			snap, err := client.Container.Snapshot()
			if err != nil {
				log.Printf("❌ Failed to export snapshot for backup: %v", err)
				continue
			}

			payload, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				log.Printf("❌ Failed to marshal snapshot for backup: %v", err)
				continue
			}

			key := "backups/snapshot-" + time.Now().UTC().Format("20060102-150405") + ".json"
			if err := utils.UploadSnapshotToR2(key, payload); err != nil {
				log.Printf("❌ Failed to upload snapshot backup: %v", err)
				continue
			}

			log.Printf("✅ Uploaded snapshot backup %s (%d games, %d players)",
				key, len(snap.Games), len(snap.Players))
		}
	}
}
