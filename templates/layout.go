package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const toastScript = `<script>
(function () {
  function show(detail) {
    var box = document.getElementById("toast");
    if (!box || !detail) return;
    box.textContent = detail.message;
    box.className = "toast toast-" + detail.type;
    setTimeout(function () { box.className = "toast hidden"; }, 4000);
  }
  document.body.addEventListener("showToast", function (evt) { show(evt.detail); });
  var m = document.cookie.match(/(?:^|; )flash_toast=([^;]*)/);
  if (m) {
    try { show(JSON.parse(decodeURIComponent(m[1].replace(/\+/g, " ")))); } catch (e) {}
    document.cookie = "flash_toast=; Max-Age=0; path=/";
  }
})();
</script>`

// NavItem is a top navigation link.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

func navItems(active string) []NavItem {
	return []NavItem{
		{Label: "Quotation", Href: "/quotation", Active: active == "/quotation"},
		{Label: "Invoice", Href: "/invoice", Active: active == "/invoice"},
	}
}

// Layout wraps body in the page shell with navigation and the toast area.
func Layout(title, active string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.rawf(`<title>%s | Smart Construction</title>`, templ.EscapeString(title))
		h.raw(`<link rel="stylesheet" href="/static/app.css">`)
		h.raw(`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`)
		h.raw(`</head><body><header class="topbar"><span class="brand">Smart Construction</span><nav>`)
		for _, n := range navItems(active) {
			class := "nav-link"
			if n.Active {
				class += " active"
			}
			h.rawf(`<a class="%s" href="%s">%s</a>`, class, templ.EscapeString(n.Href), templ.EscapeString(n.Label))
		}
		h.raw(`</nav></header><main>`)
		if h.err != nil {
			return h.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</main><div id="toast" class="toast hidden" role="status"></div>`)
		h.raw(toastScript)
		h.raw(`</body></html>`)
		return h.err
	})
}
