package constants

// DefaultBaseURL is the standard base URL for the Subspedia API.
const DefaultBaseURL = "https://www.subspedia.tv/API"

// DefaultUserAgent is sent when the caller does not configure one.
const DefaultUserAgent = "subspedia-go/0.1"

// Endpoint paths, relative to DefaultBaseURL.
const (
	PathSeriesInTranslation = "/serie_traduzione"
	PathSeriesList          = "/elenco_serie"
	PathLatestSubtitles     = "/ultimi_sottotitoli"
	PathSeriesSubtitles     = "/sottotitoli_serie"
)
