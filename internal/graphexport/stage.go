package graphexport

import (
	"context"
	"embed"
	"encoding/csv"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"marquee/internal/config"
	"marquee/internal/logging"
	"marquee/internal/pipeline"
	"marquee/internal/tablecsv"
)

//go:embed templates/*.cypher
var templates embed.FS

// Stage exports the processed tables as graph-loader CSVs plus the cypher
// templates and a summary document.
type Stage struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewStage creates the graph export stage.
func NewStage(cfg *config.Config, logger *slog.Logger) *Stage {
	return &Stage{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "graph"),
	}
}

func (s *Stage) Name() string { return "graph" }

func (s *Stage) Run(ctx context.Context) error {
	tables, err := loadTables(s.cfg.Paths.ProcessedDir)
	if err != nil {
		return pipeline.Wrap(pipeline.ErrMissingInput, "graph", "load processed", "load processed tables", err)
	}

	export := Build(tables)
	if err := ctx.Err(); err != nil {
		return err
	}

	graphDir := s.cfg.Paths.GraphDir
	if err := os.MkdirAll(graphDir, 0o755); err != nil {
		return pipeline.Wrap(nil, "graph", "write", fmt.Sprintf("create directory %q", graphDir), err)
	}
	for _, file := range export.Files() {
		if err := writeFile(graphDir, file); err != nil {
			return pipeline.Wrap(nil, "graph", "write", "write "+file.Name, err)
		}
	}

	if err := copyTemplates(graphDir); err != nil {
		return pipeline.Wrap(nil, "graph", "write", "copy cypher templates", err)
	}

	summaryPath := filepath.Join(s.cfg.Paths.DocsDir, "neo4j_export_summary.md")
	if err := os.MkdirAll(s.cfg.Paths.DocsDir, 0o755); err != nil {
		return pipeline.Wrap(nil, "graph", "write", "create docs directory", err)
	}
	if err := os.WriteFile(summaryPath, []byte(export.Summary()), 0o644); err != nil {
		return pipeline.Wrap(nil, "graph", "write", "write export summary", err)
	}

	s.logger.Info("graph export written",
		logging.Int("movie_nodes", len(export.NodesMovie.Rows)),
		logging.Int("person_nodes", len(export.NodesPerson.Rows)),
		logging.Int("acted_in", len(export.RelActedIn.Rows)),
		logging.String("dir", graphDir),
	)
	return nil
}

func loadTables(processedDir string) (Tables, error) {
	var tables Tables
	var err error
	if tables.Movies, err = tablecsv.Read(processedDir, tablecsv.Movies); err != nil {
		return tables, err
	}
	if tables.Persons, err = tablecsv.Read(processedDir, tablecsv.Persons); err != nil {
		return tables, err
	}
	if tables.Genres, err = tablecsv.Read(processedDir, tablecsv.Genres); err != nil {
		return tables, err
	}
	if tables.Companies, err = tablecsv.Read(processedDir, tablecsv.Companies); err != nil {
		return tables, err
	}
	if tables.Keywords, err = tablecsv.Read(processedDir, tablecsv.Keywords); err != nil {
		return tables, err
	}
	if tables.GenreBridges, err = tablecsv.Read(processedDir, tablecsv.GenreBridges); err != nil {
		return tables, err
	}
	if tables.CompanyBridges, err = tablecsv.Read(processedDir, tablecsv.CompanyBridges); err != nil {
		return tables, err
	}
	if tables.KeywordBridges, err = tablecsv.Read(processedDir, tablecsv.KeywordBridges); err != nil {
		return tables, err
	}
	if tables.Cast, err = tablecsv.Read(processedDir, tablecsv.CastRelations); err != nil {
		return tables, err
	}
	if tables.Directors, err = tablecsv.Read(processedDir, tablecsv.DirectorRelations); err != nil {
		return tables, err
	}
	if tables.RatingFacts, err = tablecsv.Read(processedDir, tablecsv.RatingFacts); err != nil {
		return tables, err
	}
	return tables, nil
}

func writeFile(dir string, file File) error {
	path := filepath.Join(dir, file.Name+".csv")
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	writer := csv.NewWriter(out)
	if err := writer.Write(file.Header); err != nil {
		return fmt.Errorf("write header of %s: %w", path, err)
	}
	for _, row := range file.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row of %s: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

func copyTemplates(dir string) error {
	entries, err := fs.ReadDir(templates, "templates")
	if err != nil {
		return fmt.Errorf("read embedded templates: %w", err)
	}
	for _, entry := range entries {
		data, err := templates.ReadFile("templates/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read template %s: %w", entry.Name(), err)
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
