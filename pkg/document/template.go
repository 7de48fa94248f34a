package document

import (
	"html/template"
)

const css = `
h1 {
	text-align: center;
}

@page {
	size: Letter portrait;
	margin-top: 3cm;

	@top-right {
		content: %s;
		font-size: 10px;
	}

	@bottom-center {
		content: counter(page);
	}

	@bottom-right {
		content: %s;
		font-size: 10px;
	}
}
`

var page = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>{{ .Style }}</style>
</head>
<body>
<h1 style="text-align: center;"><u>{{ .Title }}</u></h1>
{{ .Body }}
</body>
</html>
`))
