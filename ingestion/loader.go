package ingestion

import (
	"bufio"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-crypt/x/blake2b"
	"github.com/m2comLLM/llmtest/core"
)

// CSV column headers of the event table export.
const (
	colEventName = "행사명"
	colStart     = "행사 시작일"
	colEnd       = "행사 종료일"
	colLocation  = "행사장소"
	colRegStart  = "등록 시작일"
	colRegEnd    = "등록 마감일"
	colCredits   = "평점"
	colURL       = "url"
)

// Loader reads event records from source files.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger uses slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger.With("component", "loader")}
}

// LoadCSV reads an event table with a header row. Rows are matched to
// columns by header name so column order does not matter.
func (l *Loader) LoadCSV(r io.Reader, source string) ([]*core.EventRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s header: %w", source, err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimPrefix(cleanText(h), "\ufeff")] = i
	}
	field := func(rec []string, name string) string {
		if i, ok := index[name]; ok && i < len(rec) {
			return rec[i]
		}
		return ""
	}

	var records []*core.EventRecord
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return records, fmt.Errorf("reading %s: %w", source, err)
		}
		records = append(records, BuildRecord(Row{
			EventName: field(rec, colEventName),
			Start:     field(rec, colStart),
			End:       field(rec, colEnd),
			Location:  field(rec, colLocation),
			RegStart:  field(rec, colRegStart),
			RegEnd:    field(rec, colRegEnd),
			Credits:   field(rec, colCredits),
			URL:       field(rec, colURL),
		}, source))
	}
	return records, nil
}

type ragDocument struct {
	ID      string `json:"id"`
	Content struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	} `json:"content"`
	Keywords []string `json:"keywords"`
	Metadata struct {
		EventName         string `json:"event_name"`
		StartDate         string `json:"start_date"`
		EndDate           string `json:"end_date"`
		RegistrationStart string `json:"registration_start"`
		RegistrationEnd   string `json:"registration_end"`
		Location          string `json:"location"`
		Credits           string `json:"credits"`
		URL               string `json:"url"`
		Category          string `json:"category"`
	} `json:"metadata"`
	SearchBoost struct {
		Year               int    `json:"year"`
		Month              int    `json:"month"`
		Day                int    `json:"day"`
		LocationNormalized string `json:"location_normalized"`
	} `json:"search_boost"`
}

// LoadJSONL reads one prepared document per line. Malformed lines are
// logged and skipped.
func (l *Loader) LoadJSONL(r io.Reader, source string) ([]*core.EventRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var records []*core.EventRecord
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		record, err := decodeDocument([]byte(raw), source)
		if err != nil {
			l.logger.Warn("skipping document", "source", source, "line", line, "err", err)
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("reading %s: %w", source, err)
	}
	return records, nil
}

func decodeDocument(raw []byte, source string) (*core.EventRecord, error) {
	var doc ragDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if doc.ID == "" {
		return nil, fmt.Errorf("%w: missing id", ErrMalformedDocument)
	}

	md := doc.Metadata
	name := cleanText(md.EventName)

	var parts []string
	add := func(label, value string) {
		if value = cleanText(value); value != "" {
			parts = append(parts, label+": "+value)
		}
	}
	add("행사명", name)
	add("행사 시작일", md.StartDate)
	add("행사 종료일", md.EndDate)
	add("행사장소", md.Location)
	add("평점", md.Credits)
	add("URL", md.URL)
	add("카테고리", md.Category)
	if len(doc.Keywords) > 0 {
		add("키워드", strings.Join(doc.Keywords, ", "))
	}

	start := core.NoDate
	if sb := doc.SearchBoost; sb.Year > 0 && sb.Month > 0 && sb.Day > 0 {
		if d := core.NewDate(sb.Year, sb.Month, sb.Day); d.Valid() {
			start = d
		}
	}
	end := parseDate(md.EndDate)

	location := cleanText(doc.SearchBoost.LocationNormalized)
	if location == "" {
		location = NormalizeLocation(md.Location)
	}

	r := &core.EventRecord{
		ID:             doc.ID,
		Text:           strings.Join(parts, "\n"),
		EventName:      name,
		Category:       CategoryFromName(name),
		Location:       location,
		EndDate:        end,
		RegStart:       parseDate(md.RegistrationStart),
		RegEnd:         parseDate(md.RegistrationEnd),
		DurationDays:   durationDays(start, end),
		AnswerTemplate: cleanText(doc.Content.Answer),
		URL:            cleanText(md.URL),
		Source:         source,
	}
	setStartDate(r, start)
	return r, nil
}

// LoadMarkdown turns a whole note into one undated record. The first
// level-one heading names it, falling back to the file name.
func (l *Loader) LoadMarkdown(r io.Reader, source string) ([]*core.EventRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	content := cleanText(string(data))
	if content == "" {
		return nil, nil
	}

	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	for _, line := range strings.Split(content, "\n") {
		if title, ok := strings.CutPrefix(strings.TrimSpace(line), "# "); ok && strings.TrimSpace(title) != "" {
			name = strings.TrimSpace(title)
			break
		}
	}

	return []*core.EventRecord{{
		ID:           core.IDFromContent(content),
		Text:         content,
		EventName:    name,
		Category:     core.CategoryOther,
		StartDate:    core.NoDate,
		EndDate:      core.NoDate,
		RegStart:     core.NoDate,
		RegEnd:       core.NoDate,
		DurationDays: 1,
		Source:       source,
	}}, nil
}

// LoadDir walks dir recursively and loads every .csv, .jsonl and .md file.
// Files that fail to load are logged and skipped. The fingerprint hashes
// the relative path and content of every loaded file, so it changes
// whenever the source set does. A missing directory loads nothing.
func (l *Loader) LoadDir(dir string) ([]*core.EventRecord, string, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		l.logger.Warn("docs directory does not exist", "dir", dir)
		return nil, "", nil
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".csv", ".jsonl", ".md":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, "", fmt.Errorf("walking %s: %w", dir, err)
	}
	slices.Sort(paths)

	hash, err := blake2b.New(32, nil)
	if err != nil {
		return nil, "", err
	}

	var records []*core.EventRecord
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			l.logger.Error("error loading file", "path", path, "err", err)
			continue
		}
		loaded, err := l.loadFile(path, data)
		if err != nil {
			l.logger.Error("error loading file", "path", path, "err", err)
			continue
		}

		rel, _ := filepath.Rel(dir, path)
		hash.Write([]byte(filepath.ToSlash(rel)))
		hash.Write([]byte{0})
		hash.Write(data)
		hash.Write([]byte{0})

		l.logger.Debug("loaded file", "path", path, "records", len(loaded))
		records = append(records, loaded...)
	}

	return records, hex.EncodeToString(hash.Sum(nil)), nil
}

func (l *Loader) loadFile(path string, data []byte) ([]*core.EventRecord, error) {
	r := strings.NewReader(string(data))
	switch filepath.Ext(path) {
	case ".csv":
		return l.LoadCSV(r, path)
	case ".jsonl":
		return l.LoadJSONL(r, path)
	default:
		return l.LoadMarkdown(r, path)
	}
}
