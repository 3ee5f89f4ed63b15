package server

import (
	"context"
	"html"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/inkpress/typeset/internal/config"
)

// previewPage builds the preview page as a templ component: template name
// and the two artifacts side by side, plus the reload socket.
func previewPage(name, metadataOut, preambleOut string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>typeset preview: `+html.EscapeString(name)+`</title>
<style>
  body { font-family: sans-serif; margin: 2rem; }
  .artifacts { display: flex; gap: 2rem; }
  .artifacts section { flex: 1; min-width: 0; }
  pre { background: #f6f6f6; padding: 1rem; overflow-x: auto; }
</style>
</head>
<body>
<h1>`+html.EscapeString(name)+`</h1>
<div class="artifacts">
  <section>
    <h2>Metadata</h2>
    <pre>`+html.EscapeString(metadataOut)+`</pre>
  </section>
  <section>
    <h2>Preamble</h2>
    <pre>`+html.EscapeString(preambleOut)+`</pre>
  </section>
</div>
<script>
  const ws = new WebSocket("ws://" + location.host + "/ws");
  ws.onmessage = (msg) => { if (msg.data === "reload") location.reload(); };
</script>
</body>
</html>
`)
		return err
	})
}

func (s *PreviewServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	metadataOut, err := s.generateMetadata()
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	preambleOut, err := s.generatePreamble()
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	name := s.templatePath
	if cfg, err := config.Load(s.templatePath); err == nil && cfg.Name != "" {
		name = cfg.Name
	}

	templ.Handler(previewPage(name, metadataOut, preambleOut)).ServeHTTP(w, r)
}
