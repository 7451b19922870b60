package corpus

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/unidoc/unipdf/v3/common/license"
	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"

	"cvrag/internal/domain"
)

func init() {
	key := os.Getenv("UNIDOC_LICENSE_KEY")
	if key == "" {
		return
	}
	if err := license.SetMeteredKey(key); err != nil {
		log.Printf("LOADER: Failed to set Unidoc license key: %v. PDF processing will fail.", err)
	}
}

// Loader reads the CV and skills corpora from disk.
type Loader struct {
	cvDir     string
	skillsDir string
}

func NewLoader(cvDir, skillsDir string) *Loader {
	return &Loader{cvDir: cvDir, skillsDir: skillsDir}
}

// Load returns every document from both corpus directories. Missing
// directories are skipped; an empty corpus is not an error, only a warning.
func (l *Loader) Load() ([]domain.Document, error) {
	var documents []domain.Document

	cvDocs, err := l.loadCVDir()
	if err != nil {
		return nil, err
	}
	documents = append(documents, cvDocs...)

	skillDocs, err := l.loadSkillsDir()
	if err != nil {
		return nil, err
	}
	documents = append(documents, skillDocs...)

	if len(documents) == 0 {
		log.Println("LOADER: No documents found in CV or skills directories.")
	} else {
		log.Printf("LOADER: Loaded %d documents from CV and skills directories.", len(documents))
	}
	return documents, nil
}

// loadCVDir loads every PDF (one document per page) and Markdown file from
// the CV directory.
func (l *Loader) loadCVDir() ([]domain.Document, error) {
	if _, err := os.Stat(l.cvDir); os.IsNotExist(err) {
		log.Printf("LOADER: CV directory %s does not exist, skipping.", l.cvDir)
		return nil, nil
	}

	entries, err := os.ReadDir(l.cvDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read cv directory %s: %w", l.cvDir, err)
	}

	var documents []domain.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(l.cvDir, entry.Name())
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".pdf":
			pages, err := extractPDFPages(path)
			if err != nil {
				log.Printf("LOADER: Skipping unreadable PDF %s: %v", path, err)
				continue
			}
			for i, text := range pages {
				if strings.TrimSpace(text) == "" {
					continue
				}
				documents = append(documents, domain.Document{
					Content: text,
					Metadata: map[string]string{
						domain.MetaSource:   path,
						domain.MetaCategory: "cv",
						domain.MetaFileType: "pdf",
						domain.MetaPage:     strconv.Itoa(i + 1),
					},
				})
			}
		case ".md":
			content, err := os.ReadFile(path)
			if err != nil {
				log.Printf("LOADER: Skipping unreadable file %s: %v", path, err)
				continue
			}
			documents = append(documents, domain.Document{
				Content: string(content),
				Metadata: map[string]string{
					domain.MetaSource:   path,
					domain.MetaCategory: "cv",
					domain.MetaFileType: "markdown",
				},
			})
		}
	}
	return documents, nil
}

// loadSkillsDir recursively loads every Markdown file below the skills
// directory, tagging each with its immediate parent directory as category.
func (l *Loader) loadSkillsDir() ([]domain.Document, error) {
	if _, err := os.Stat(l.skillsDir); os.IsNotExist(err) {
		log.Printf("LOADER: Skills directory %s does not exist, skipping.", l.skillsDir)
		return nil, nil
	}

	var documents []domain.Document
	err := filepath.Walk(l.skillsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || strings.ToLower(filepath.Ext(path)) != ".md" {
			return nil
		}
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			log.Printf("LOADER: Skipping unreadable file %s: %v", path, readErr)
			return nil
		}
		category := filepath.Base(filepath.Dir(path))
		if filepath.Clean(filepath.Dir(path)) == filepath.Clean(l.skillsDir) {
			category = "skills"
		}
		documents = append(documents, domain.Document{
			Content: string(content),
			Metadata: map[string]string{
				domain.MetaSource:   path,
				domain.MetaCategory: category,
				domain.MetaFileType: "markdown",
			},
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk skills directory %s: %w", l.skillsDir, err)
	}
	return documents, nil
}

// extractPDFPages uses UniPDF to get the text of each page separately.
func extractPDFPages(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pdfReader, err := model.NewPdfReader(f)
	if err != nil {
		return nil, err
	}

	numPages, err := pdfReader.GetNumPages()
	if err != nil {
		return nil, err
	}

	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page, err := pdfReader.GetPage(i)
		if err != nil {
			return nil, err
		}
		ex, err := extractor.New(page)
		if err != nil {
			return nil, err
		}
		text, err := ex.ExtractText()
		if err != nil {
			return nil, err
		}
		pages = append(pages, text)
	}
	return pages, nil
}
