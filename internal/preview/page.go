package preview

import "html/template"

type pageData struct {
	Theme   string
	Layout  string
	Themes  []string
	Layouts []string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Periodic table preview</title>
<style>
body { font-family: Arial, sans-serif; margin: 1rem; background: #f4f4f4; }
form { margin-bottom: 1rem; }
#table img { max-width: 100%; }
</style>
</head>
<body>
<form id="controls">
<label>Theme
<select name="theme">{{range .Themes}}<option{{if eq . $.Theme}} selected{{end}}>{{.}}</option>{{end}}</select>
</label>
<label>Layout
<select name="layout">{{range .Layouts}}<option{{if eq . $.Layout}} selected{{end}}>{{.}}</option>{{end}}</select>
</label>
</form>
<div id="table"><img id="svg" alt="periodic table"></div>
<script>
(function () {
  var form = document.getElementById("controls");
  var img = document.getElementById("svg");
  function refresh() {
    var q = new URLSearchParams(new FormData(form));
    q.set("t", Date.now());
    img.src = "/table.svg?" + q.toString();
  }
  form.addEventListener("change", refresh);
  refresh();
  function connect() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/ws");
    ws.onmessage = function (e) { if (e.data === "reload") { refresh(); } };
    ws.onclose = function () { setTimeout(connect, 1000); };
  }
  connect();
})();
</script>
</body>
</html>
`))
