package main

import(
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"time"

	"golang.org/x/net/context"

	"github.com/skypies/util/widget"

	"github.com/hasiegler/Space-Station-API/ui"
)

var(
	tmpl *template.Template  // Singleton that belongs to the webapp
)

func init() {
	// The functions to parse templates live in the UI library. The templates
	// dir is relative to the repo root, which is where the server runs from.
	tmpl = widget.ParseRecursive(template.New("").Funcs(ui.TemplateFuncMap()), "app/frontend/templates")
	ui.InitTemplates(tmpl)

	// This is the routine that creates new contexts, as required by the AppHandlers
	ctxMaker := func(r *http.Request) context.Context {
		ctx,_ := context.WithTimeout(r.Context(), 55 * time.Second)
		return ctx
	}

	// ui/map.go
	http.HandleFunc("/", ui.WithAppCtx(ctxMaker, ui.MapHandler))
	http.HandleFunc("/passes/map", ui.WithAppCtx(ctxMaker, ui.MapHandler))

	// ui/lists.go
	http.HandleFunc("/passes/list", ui.WithAppCtx(ctxMaker, ui.ListHandler))

	// ui/json.go
	http.HandleFunc("/passes/json", ui.WithAppCtx(ctxMaker, ui.JsonHandler))

	// ui/report.go
	http.HandleFunc("/passes/csv", ui.WithAppCtx(ctxMaker, ui.CsvHandler))
	http.HandleFunc("/passes/xlsx", ui.WithAppCtx(ctxMaker, ui.XlsxHandler))
	http.HandleFunc("/passes/pdf", ui.WithAppCtx(ctxMaker, ui.PdfHandler))

	// ui/api.go
	http.HandleFunc("/api/passes", ui.WithAppCtx(ctxMaker, ui.PassLookupHandler))
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fs := http.FileServer(http.Dir("./app/frontend/static"))
	http.Handle("/static/", http.StripPrefix("/static/", fs))

	log.Printf("Listening on port %s [space-station-api/app/frontend]", port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%s", port), nil))
}
