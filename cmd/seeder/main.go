package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m2comLLM/llmtest"
	"github.com/m2comLLM/llmtest/config"
	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/ingestion"
)

// sampleRows is a small catalog covering every category, weekend and
// multi-day events, open and closed registration windows and several venues.
var sampleRows = []ingestion.Row{
	{EventName: "대한천식알레르기학회 춘계 심포지엄", Start: "2025-04-12", End: "2025-04-13", Location: "서울대 호암관", RegStart: "2025-02-01", RegEnd: "2025-04-05", Credits: "6", URL: "https://example.org/kaaaci-spring"},
	{EventName: "호흡기 질환 워크숍", Start: "2025-05-10", End: "2025-05-10", Location: "코엑스 3층 컨퍼런스룸", RegStart: "2025-03-15", RegEnd: "2025-05-01", Credits: "3"},
	{EventName: "임상연구 방법론 스쿨", Start: "2025-06-21", End: "2025-06-22", Location: "양재 aT 센터 창조룸III", RegStart: "2025-05-01", RegEnd: "2025-06-14", Credits: "8"},
	{EventName: "추계 학술대회", Start: "2025-10-24", End: "2025-10-25", Location: "부산 벡스코", RegStart: "2025-08-01", RegEnd: "2025-10-10", Credits: "12", URL: "https://example.org/autumn"},
	{EventName: "전공의 교육 프로그램", Start: "2025-03-08", End: "2025-03-08", Location: "서울대 암연구소", Credits: "2"},
	{EventName: "면역학 월례 세미나", Start: "2025-02-19", End: "2025-02-19", Location: "온라인", RegStart: "2025-01-20", RegEnd: "2025-02-18"},
	{EventName: "알레르기 면역치료 심포지엄", Start: "2025-09-06", End: "2025-09-06", Location: "코엑스 그랜드볼룸", RegStart: "2025-07-01", RegEnd: "2025-08-31", Credits: "4"},
	{EventName: "소아 알레르기 워크숍", Start: "2024-11-16", End: "2024-11-17", Location: "대구 엑스코", Credits: "5"},
	{EventName: "연구자 네트워킹 행사", Start: "2025-07-04", End: "2025-07-04", Location: "양재 aT센터 세계로룸 I"},
	{EventName: "하계 집중 교육", Start: "2025-08-18", End: "2025-08-20", Location: "제주 ICC", RegStart: "2025-06-01", RegEnd: "2025-08-01", Credits: "10"},
}

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

// writeCSV writes rows with the column headers the CSV loader expects.
func writeCSV(w io.Writer, rows []ingestion.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"행사명", "행사 시작일", "행사 종료일", "행사장소", "등록 시작일", "등록 마감일", "평점", "url"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.EventName, r.Start, r.End, r.Location, r.RegStart, r.RegEnd, r.Credits, r.URL}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func records(rows []ingestion.Row) []*core.EventRecord {
	out := make([]*core.EventRecord, len(rows))
	for i, row := range rows {
		out[i] = ingestion.BuildRecord(row, "seeder")
	}
	return out
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("seeding failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("seeder", flag.ContinueOnError)
	configPath := flags.String("config", "eventqa.yaml", "path to YAML configuration")
	envFile := flags.String("env-file", ".env", "optional .env file")
	csvOut := flags.String("csv", "", "write the sample catalog as CSV to this path instead of ingesting it")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *csvOut != "" {
		return writeCSVFile(*csvOut)
	}

	if err := config.LoadEnv(*envFile); err != nil {
		return err
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	catalog, err := llmtest.OpenCatalog(cfg)
	if err != nil {
		return err
	}
	defer catalog.Close()

	pipeline, err := catalog.NewIngestionPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()

	report, err := pipeline.ReplaceAll(context.Background(), records(sampleRows))
	if err != nil {
		return err
	}
	slog.Info("seeded catalog", "store", cfg.StorePath, "stored", report.Stored, "embedded", report.Embedded)
	return nil
}

func writeCSVFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeCSV(f, sampleRows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("wrote sample catalog", "path", path, "events", len(sampleRows))
	return nil
}
