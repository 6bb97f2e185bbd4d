package render

const reportTemplate = `<!DOCTYPE html>
<html lang="zh-Hant">
<head>
<meta charset="utf-8">
<title>虹靈御所 · 命盤報告</title>
</head>
<body>
<div id="report-container">
  <header>
    <h1>虹靈御所</h1>
    {{if .UserName}}<p class="user-name">{{.UserName}} 的命盤</p>{{end}}
    <p class="tone">語調：{{.Tone}}</p>
  </header>

  <section id="pillars">
    {{range .Pillars}}
    <div class="pillar-card" data-position="{{.Position}}">
      <span class="position">{{.Position}}柱</span>
      <span class="label">{{.Label}}</span>
      <span class="gan">{{.Gan}}</span>
      <span class="zhi">{{.Zhi}}</span>
    </div>
    {{end}}
  </section>

  <section id="five-elements">
    {{if .ChartAssetURL}}
    <canvas id="elements-radar"></canvas>
    <script src="{{.ChartAssetURL}}"></script>
    {{end}}
    <ul class="element-breakdown">
      {{range .Elements}}
      <li data-element="{{.Name}}">{{.Name}}：{{.Count}}（{{.Percent}}%）</li>
      {{end}}
    </ul>
  </section>

  <section id="yinyang">
    <span class="yin">陰 {{.YinCount}}</span>
    <span class="yang">陽 {{.YangCount}}</span>
  </section>

  <section id="narratives">
    {{range .Narratives}}
    <article class="narrative-card" data-position="{{.Position}}">
      <h2>{{.Position}}柱 · {{.Commander}}</h2>
      <p class="strategist">軍師：{{.Strategist}}</p>
      <p class="nayin">納音：{{.NaYin}}</p>
      {{if .TenGod}}<p class="tengod">十神：{{.TenGod}}</p>{{end}}
      <p class="story">{{.Story}}</p>
    </article>
    {{end}}
  </section>

  <section id="spirits">
    {{range .Spirits}}
    <div class="spirit" data-category="{{.Category}}">{{.Text}}</div>
    {{end}}
  </section>
</div>
</body>
</html>
`
