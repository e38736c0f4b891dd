package api

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterIndexRoutes registers the landing page.
func (s *Server) RegisterIndexRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(indexTemplate)
	r.GET("/", s.handleIndex)
}

// handleIndex renders a minimal form page. The JSON API is the primary
// surface; this page exists for a quick manual check of the server.
// GET /
func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{
		"Languages":  s.catalog.Languages(),
		"Categories": s.catalog.Seed(),
	})
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Генератор статей</title>
</head>
<body>
<h1>Генератор статей</h1>
<form method="post" action="/api/generate">
<label>Язык:
<select name="language">
{{- range .Languages}}
<option value="{{.}}">{{.}}</option>
{{- end}}
</select>
</label>
<label>Категория:
<select name="category">
<option value="">выберите категорию</option>
{{- range .Categories}}
<option value="{{.Name}}" data-language="{{.Language}}">{{.Name}}</option>
{{- end}}
</select>
</label>
<input type="text" name="topic" placeholder="Тема статьи">
<button type="submit">Сгенерировать</button>
</form>
<script>
const languageSelect = document.querySelector('select[name="language"]');
const categorySelect = document.querySelector('select[name="category"]');
function filterCategories() {
  for (const option of categorySelect.options) {
    const match = !option.dataset.language || option.dataset.language === languageSelect.value;
    option.hidden = !match;
    if (!match && option.selected) {
      categorySelect.selectedIndex = 0;
    }
  }
}
languageSelect.addEventListener('change', filterCategories);
filterCategories();
</script>
</body>
</html>
`))
