package tabstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"importafacil/internal/usecase/interfaces"
)

// Sheets persists each tab as a sheet of the configured spreadsheet, the
// header row in row 1. This is the backend the tool was born on: operators
// read and occasionally hand-edit the spreadsheet directly, which is where
// header drift and stringified numerics come from.
type Sheets struct {
	svc           *gsheet.Service
	spreadsheetID string
}

var _ interfaces.ITabStore = (*Sheets)(nil)

// NewSheetsFromEnv creates a Sheets tab store using environment variables.
// Required: GOOGLE_SPREADSHEET_ID. Credentials come from
// GOOGLE_CREDENTIALS_JSON (inline service account) or application default
// credentials (GOOGLE_APPLICATION_CREDENTIALS).
func NewSheetsFromEnv(ctx context.Context) (*Sheets, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	opts := []goption.ClientOption{goption.WithScopes(gsheet.SpreadsheetsScope)}
	if credsJSON := strings.TrimSpace(os.Getenv("GOOGLE_CREDENTIALS_JSON")); credsJSON != "" {
		cfg, err := google.JWTConfigFromJSON([]byte(credsJSON), gsheet.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("sheets credentials: %w", err)
		}
		opts = append(opts, goption.WithTokenSource(cfg.TokenSource(ctx)))
	}
	svc, err := gsheet.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Sheets{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (s *Sheets) ReadTab(ctx context.Context, tab string) ([]string, [][]string, error) {
	rng := fmt.Sprintf("%s!A1:ZZ", tab)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", rng, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil, nil
	}
	headers := toStrings(resp.Values[0])
	rows := make([][]string, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		rows = append(rows, toStrings(raw))
	}
	return headers, rows, nil
}

func (s *Sheets) WriteTab(ctx context.Context, tab string, headers []string, rows [][]string) error {
	rng := fmt.Sprintf("%s!A1:ZZ", tab)
	if _, err := s.svc.Spreadsheets.Values.Clear(s.spreadsheetID, rng, &gsheet.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear %s: %w", rng, err)
	}

	values := make([][]any, 0, len(rows)+1)
	values = append(values, toAnys(headers))
	for _, row := range rows {
		values = append(values, toAnys(row))
	}
	vr := &gsheet.ValueRange{Values: values}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, fmt.Sprintf("%s!A1", tab), vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update %s: %w", tab, err)
	}
	return nil
}

func toStrings(in []any) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}

func toAnys(in []string) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
