package ui

import(
	"html/template"
	"net/http"
	"time"

	"golang.org/x/net/context"

	"github.com/skypies/util/widget"

	isspass "github.com/hasiegler/Space-Station-API"
	"github.com/hasiegler/Space-Station-API/config"
	"github.com/hasiegler/Space-Station-API/opennotify"
	"github.com/hasiegler/Space-Station-API/ref"
)

// Some convenience combos
func WithAppCtx(f widget.CtxMaker, ah AppHandler) widget.BaseHandler {
	return widget.WithCtx(f, WithApp(ah))
}

var templates *template.Template // Singleton that belongs to the webapp

// InitTemplates hands over the webapp's parsed template set; call it once,
// before serving. The handlers in this package assume it is non-nil.
func InitTemplates(t *template.Template) { templates = t }

// Rather than stash/retrieve the prediction pipeline from the context, we
// just pass it directly to a new handler type, that we'll use throughout ui/.
type AppHandler func(App, http.ResponseWriter, *http.Request)

// App is what a handler needs to get anything done: a context, plus the
// pipeline pieces (where the capitals come from, who predicts the passes,
// how many passes to keep per capital).
type App struct {
	ctx       context.Context
	StartTime time.Time

	Capitals  isspass.CapitalSource
	Predictor isspass.Predictor
	NumPasses int
	Retries   int
}

func (app App)Ctx() context.Context { return app.ctx }

// {{{ NewApp

// NewApp assembles the default pipeline. Config can override the reference
// table URLs, the prediction service host, and the HTTP timeout.
func NewApp(ctx context.Context) App {
	timeout := isspass.DefaultFetchTimeout
	if s := config.Get("fetch.timeout"); s != "" {
		if d,err := time.ParseDuration(s); err == nil { timeout = d }
	}
	client := &http.Client{Timeout: timeout}

	loader := ref.NewLoader(client)
	if url := config.Get("ref.llurl"); url != "" { loader.LatlongsURL = url }
	if url := config.Get("ref.namesurl"); url != "" { loader.NamesURL = url }

	predictor := opennotify.NewClient(client)
	if host := config.Get("opennotify.host"); host != "" { predictor.Host = host }

	return App{
		ctx:       ctx,
		StartTime: time.Now(),
		Capitals:  loader,
		Predictor: predictor,
		NumPasses: isspass.NumPassesKept,
	}
}

// }}}
// {{{ app.PassTable

// PassTable runs the whole pipeline: load the capitals, walk them asking for
// pass predictions, and reshape into one row per capital. The map records
// the capitals we couldn't get predictions for; only a reference table
// problem is a hard error.
func (app App)PassTable() ([]isspass.CapitalPasses, map[string]error, error) {
	capitals,err := app.Capitals.Capitals()
	if err != nil { return nil, nil, err }

	f := isspass.Fetcher{Predictor:app.Predictor, NumPasses:app.NumPasses, Retries:app.Retries}
	preds,failures := f.FetchAll(app.Ctx(), capitals)

	return isspass.BuildPassTable(preds), failures, nil
}

// }}}
// {{{ passTableForRequest

// Most handlers want the same thing: the full table, minus any &states=
// filter from the request.
func passTableForRequest(app App, r *http.Request) ([]isspass.CapitalPasses, map[string]error, error) {
	rows,failures,err := app.PassTable()
	if err != nil { return nil, nil, err }

	if states := widget.FormValueCommaSepStrings(r,"states"); len(states) > 0 {
		rows = isspass.FilterStates(rows, states)
	}
	return rows, failures, nil
}

// }}}

// {{{ WithApp

func WithApp(ah AppHandler) widget.ContextHandler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		app := NewApp(ctx)

		// &retries=2 : retry failed lookups a few times before giving up
		if n := widget.FormValueInt64(r, "retries"); n > 0 {
			app.Retries = int(n)
		}

		ah(app, w, r)
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
