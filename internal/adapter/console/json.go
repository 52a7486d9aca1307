package console

import (
	"io"

	"dbcheck/internal/core/domain"
	"dbcheck/internal/core/ports"
	"dbcheck/pkg/response"
)

// JSONReporter stays silent during the run and writes a single response
// envelope at the end, for scripts and CI.
type JSONReporter struct {
	out       io.Writer
	shown     []domain.DatabaseInfo
	remaining int
	err       error
}

var _ ports.Reporter = (*JSONReporter)(nil)

// NewJSONReporter creates a reporter writing one JSON document to out.
func NewJSONReporter(out io.Writer) *JSONReporter {
	return &JSONReporter{out: out}
}

type databaseView struct {
	Name       string `json:"name"`
	SizeOnDisk int64  `json:"size_on_disk"`
	Size       string `json:"size"`
	Empty      bool   `json:"empty"`
}

type reportView struct {
	Backend      string         `json:"backend"`
	Host         string         `json:"host"`
	Port         int            `json:"port,omitempty"`
	Database     string         `json:"database"`
	Ping         string         `json:"ping"`
	Databases    []databaseView `json:"databases"`
	More         int            `json:"more"`
	TotalOnDisk  int64          `json:"total_size_on_disk"`
	ElapsedMilli int64          `json:"elapsed_ms"`
}

func (r *JSONReporter) Start()                          {}
func (r *JSONReporter) URIFound(string)                 {}
func (r *JSONReporter) Connecting(domain.Backend)       {}
func (r *JSONReporter) Connected(domain.ConnectionInfo) {}
func (r *JSONReporter) Pinging()                        {}
func (r *JSONReporter) Pinged(domain.PingResult)        {}
func (r *JSONReporter) Disconnected()                   {}

func (r *JSONReporter) Databases(shown []domain.DatabaseInfo, remaining int, total int64) {
	r.shown = shown
	r.remaining = remaining
}

func (r *JSONReporter) Succeeded(report *domain.ConnectionReport) {
	view := reportView{
		Backend:      string(report.Info.Backend),
		Host:         report.Info.Host,
		Port:         report.Info.Port,
		Database:     report.Info.Database,
		Ping:         report.Ping.Raw,
		Databases:    make([]databaseView, 0, len(r.shown)),
		More:         r.remaining,
		TotalOnDisk:  report.TotalSize(),
		ElapsedMilli: report.Elapsed.Milliseconds(),
	}
	for _, db := range r.shown {
		view.Databases = append(view.Databases, databaseView{
			Name:       db.Name,
			SizeOnDisk: db.SizeOnDisk,
			Size:       db.SizeMB(),
			Empty:      db.Empty,
		})
	}
	r.record(response.OK(r.out, report.RunID, view))
}

func (r *JSONReporter) ConfigurationFailed(err error) {
	r.record(response.Error(r.out, "", err))
}

func (r *JSONReporter) ConnectionFailed(err error) {
	r.record(response.Error(r.out, "", err))
}

// Err returns the first error hit while writing the envelope.
func (r *JSONReporter) Err() error {
	return r.err
}

func (r *JSONReporter) record(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}
