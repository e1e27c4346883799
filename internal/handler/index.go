package handler

import "net/http"

const indexHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>510(k) Assistant</title>
</head>
<body>
  <h1>Backend is running.</h1>
  <p>The user interface is served by the frontend application.</p>
</body>
</html>
`

func Index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(indexHTML))
	}
}
