package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/subcommands"
	"github.com/mstokes/cgt"
	"github.com/mstokes/cgt/renderer"
	"github.com/mstokes/cgt/stockplan"
)

// serveCmd holds the flags for the 'serve' subcommand.
type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "web form to upload reports and view gains" }
func (*serveCmd) Usage() string {
	return `cgt serve [-addr <host:port>]

  Starts a local web server with an upload form for the two
  Stock Plan Connect reports, and renders the gains report in
  the browser. Uploads are processed in memory and discarded.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "localhost:8000", "Address to listen on")
}

func (c *serveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))
	r.Get("/", serveForm)
	r.Post("/", serveReport)

	log.Info("listening", "addr", c.addr)
	if err := http.ListenAndServe(c.addr, r); err != nil {
		log.Error("server stopped", "err", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// requestLogger logs one line per request.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"duration", time.Since(start).String(),
			)
		})
	}
}

const uploadForm = `Head to the [Stock Plan Connect Activity Report](https://stockplan.morganstanley.com/solium/servlet/ui/activity/reports/) page,
and use that to export all historical data in CSV format. Unzip the resulting
file, and upload ` + "`Releases Report.csv` and `Withdrawals Report.csv`" + ` here.

<form method="post" enctype="multipart/form-data">
<table>
<tr><td>Stock Plan Connect <code>Releases Report.csv</code></td>
<td><input type="file" accept="text/csv" name="releases"/></td></tr>
<tr><td>Stock Plan Connect <code>Withdrawals Report.csv</code></td>
<td><input type="file" accept="text/csv" name="withdrawals"/></td></tr>
<tr><td colspan="2"><input type="submit" value="Tax me!"/></td></tr>
</table>
</form>
`

func serveForm(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, "UK Capital Gains", uploadForm)
}

func serveReport(w http.ResponseWriter, r *http.Request) {
	// 32 MB is far beyond any plausible activity report.
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "cannot parse upload: "+err.Error(), http.StatusBadRequest)
		return
	}
	releases, _, err := r.FormFile("releases")
	if err != nil {
		http.Error(w, "missing releases report", http.StatusBadRequest)
		return
	}
	defer releases.Close()
	withdrawals, _, err := r.FormFile("withdrawals")
	if err != nil {
		http.Error(w, "missing withdrawals report", http.StatusBadRequest)
		return
	}
	defer withdrawals.Close()

	txs, diags := stockplan.Parse(releases, withdrawals)
	if len(diags) > 0 {
		writeHTML(w, "Failed", renderer.DiagnosticsMarkdown(diags))
		return
	}

	result, err := cgt.Calculate(txs, stockplan.CorporateActions())
	if err != nil {
		writeHTML(w, "Failed", fmt.Sprintf("Calculation failed: %v\n", err))
		return
	}

	var md strings.Builder
	md.WriteString(renderer.GainsMarkdown(result))
	md.WriteString("\n")
	md.WriteString(renderer.TransactionsMarkdown(result))
	writeHTML(w, "UK Capital Gains", md.String())
}

func writeHTML(w http.ResponseWriter, title, md string) {
	page, err := renderer.HTML(title, md)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, page)
}
