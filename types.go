package subspedia

import "fmt"

// Records returned by the API. The json tags are the wire contract: every
// tagged field must be present in each response object.

// TranslatingSeries is a series whose next episode is currently being translated.
type TranslatingSeries struct {
	ID        uint   `json:"id_serie"`
	Name      string `json:"nome_serie"`
	Link      string `json:"link_serie"`
	TheTVDBID uint   `json:"id_thetvdb"`
	Season    uint   `json:"num_stagione"`
	Episode   uint   `json:"num_episodio"`
	Status    string `json:"stato"`
}

// Series is one entry of the full series catalog.
type Series struct {
	ID        uint   `json:"id_serie"`
	Name      string `json:"nome_serie"`
	Link      string `json:"link_serie"`
	TheTVDBID uint   `json:"id_thetvdb"`
	Status    string `json:"stato"`
	Year      uint   `json:"anno"`
}

func (s Series) String() string {
	return fmt.Sprintf("%s (%d) [id %d]", s.Name, s.Year, s.ID)
}

// Subtitle is a translated subtitle for one episode.
type Subtitle struct {
	SeriesID     uint   `json:"id_serie"`
	SeriesName   string `json:"nome_serie"`
	EpisodeTitle string `json:"ep_titolo"`
	Season       uint   `json:"num_stagione"`
	Episode      uint   `json:"num_episodio"`
	Image        string `json:"immagine"`
	SubtitleLink string `json:"link_sottotitoli"`
	SeriesLink   string `json:"link_serie"`
	FileLink     string `json:"link_file"`
	Description  string `json:"descrizione"`
	TheTVDBID    uint   `json:"id_thetvdb"`
	ReleaseDate  string `json:"data_uscita"`
	Thanks       uint   `json:"grazie"`
}

// EpisodeCode formats season and episode as S01E02.
func (s Subtitle) EpisodeCode() string {
	return fmt.Sprintf("S%02dE%02d", s.Season, s.Episode)
}
