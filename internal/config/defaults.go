package config

const (
	defaultRawDir       = "~/.local/share/marquee/data/raw"
	defaultProcessedDir = "~/.local/share/marquee/data/processed"
	defaultCuratedDir   = "~/.local/share/marquee/data/curated"
	defaultGraphDir     = "~/.local/share/marquee/data/neo4j"
	defaultSQLDir       = "~/.local/share/marquee/data/sql"
	defaultDocsDir      = "~/.local/share/marquee/docs"
	defaultLogDir       = "~/.local/share/marquee/logs"

	defaultMoviesMetadata = "movies_metadata.csv"
	defaultCredits        = "credits.csv"
	defaultKeywords       = "keywords.csv"
	defaultRatings        = "ratings_small.csv"
	defaultLinks          = "links_small.csv"

	defaultMinRatingCount  = 50
	defaultMaxCastPerMovie = 20
	defaultDirectorJob     = "Director"

	defaultTopCompanies      = 3
	defaultTopKeywords       = 10
	defaultCoActorMinRatings = 50
	defaultCoActorMaxOrder   = 10
	defaultCoActorTopPairs   = 50

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			RawDir:       defaultRawDir,
			ProcessedDir: defaultProcessedDir,
			CuratedDir:   defaultCuratedDir,
			GraphDir:     defaultGraphDir,
			SQLDir:       defaultSQLDir,
			DocsDir:      defaultDocsDir,
			LogDir:       defaultLogDir,
		},
		Inputs: Inputs{
			MoviesMetadata: defaultMoviesMetadata,
			Credits:        defaultCredits,
			Keywords:       defaultKeywords,
			Ratings:        defaultRatings,
			Links:          defaultLinks,
		},
		Transform: Transform{
			MinRatingCount:  defaultMinRatingCount,
			MaxCastPerMovie: defaultMaxCastPerMovie,
			DirectorJob:     defaultDirectorJob,
		},
		Curated: Curated{
			TopCompanies:      defaultTopCompanies,
			TopKeywords:       defaultTopKeywords,
			CoActorMinRatings: defaultCoActorMinRatings,
			CoActorMaxOrder:   defaultCoActorMaxOrder,
			CoActorTopPairs:   defaultCoActorTopPairs,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
