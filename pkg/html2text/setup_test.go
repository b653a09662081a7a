package html2text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!doctype html>
<html>
<head><title>Deploy Guide</title><style>body { color: red }</style></head>
<body>
<nav><a href="/">Home</a></nav>
<h1>Deploying</h1>
<p>First   build the image.</p>
<script>console.log("tracking")</script>
<p>Then push it.</p>
<footer>© example</footer>
</body>
</html>`

func TestParseDropsNonContentElements(t *testing.T) {
	text, err := NewParser().Parse(page)
	require.NoError(t, err)

	assert.Contains(t, text, "Deploying")
	assert.Contains(t, text, "First build the image.")
	assert.Contains(t, text, "Then push it.")
	assert.NotContains(t, text, "tracking")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Home")
	assert.NotContains(t, text, "example")
}

func TestParseSeparatesBlocks(t *testing.T) {
	text, err := NewParser().Parse("<h1>Title</h1><p>Body</p>")
	require.NoError(t, err)
	assert.Contains(t, text, "Title\nBody")
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Deploy Guide", Title(page))
	assert.Equal(t, "", Title("<p>no title</p>"))
}
