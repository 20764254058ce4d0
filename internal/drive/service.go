// backend-go/internal/drive/service.go

// Package drive fetches masked dataset exports from a shared Google Drive
// folder, for deployments where the planner drops new CSVs there instead of
// an object store.
package drive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

type Service struct {
	srv *drive.Service
}

func NewService(credentialsJSON string) (*Service, error) {
	config, err := google.JWTConfigFromJSON(
		[]byte(credentialsJSON),
		drive.DriveReadonlyScope,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to parse credentials: %w", err)
	}

	client := config.Client(context.Background())

	srv, err := drive.NewService(context.Background(), option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create drive client: %w", err)
	}

	return &Service{srv: srv}, nil
}

// Export is one masked dataset file visible in the Drive folder.
type Export struct {
	ID           string
	Name         string
	ModifiedTime string
	Size         int64
}

// ListExports lists CSV files in the folder, newest first.
func (s *Service) ListExports(folderID string) ([]*Export, error) {
	if folderID == "" {
		folderID = "root"
	}

	result, err := s.srv.Files.List().
		Q(fmt.Sprintf("'%s' in parents and trashed=false and mimeType='text/csv'", folderID)).
		OrderBy("modifiedTime desc").
		Fields("files(id, name, modifiedTime, size)").
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to list exports: %w", err)
	}

	var exports []*Export
	for _, f := range result.Files {
		exports = append(exports, &Export{
			ID:           f.Id,
			Name:         f.Name,
			ModifiedTime: f.ModifiedTime,
			Size:         f.Size,
		})
	}

	return exports, nil
}

// FetchLatest downloads the newest export in the folder into dataDir and
// returns the local path.
func (s *Service) FetchLatest(folderPath, dataDir string) (string, error) {
	folderID, err := s.FindFolderByPath(folderPath)
	if err != nil {
		return "", err
	}

	exports, err := s.ListExports(folderID)
	if err != nil {
		return "", err
	}
	if len(exports) == 0 {
		return "", fmt.Errorf("no masked exports found in drive folder %s", folderPath)
	}

	latest := exports[0]
	destPath := filepath.Join(dataDir, latest.Name)

	out, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("unable to create %s: %w", destPath, err)
	}
	defer out.Close()

	resp, err := s.srv.Files.Get(latest.ID).Download()
	if err != nil {
		return "", fmt.Errorf("unable to download export: %w", err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("unable to write export: %w", err)
	}

	return destPath, nil
}

// FindFolderByPath walks a slash-separated folder path from the Drive root.
func (s *Service) FindFolderByPath(path string) (string, error) {
	if path == "" {
		return "root", nil
	}

	currentID := "root"
	for _, folder := range strings.Split(path, "/") {
		if folder == "" {
			continue
		}

		result, err := s.srv.Files.List().
			Q(fmt.Sprintf("'%s' in parents and name='%s' and mimeType='application/vnd.google-apps.folder' and trashed=false",
				currentID, folder)).
			Fields("files(id, name)").
			Do()
		if err != nil {
			return "", fmt.Errorf("error finding folder %s: %w", folder, err)
		}

		if len(result.Files) == 0 {
			return "", fmt.Errorf("folder not found: %s", folder)
		}

		currentID = result.Files[0].Id
	}

	return currentID, nil
}
