package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/phravins/pagecraft/internal/export"
	"github.com/phravins/pagecraft/internal/layout"
)

const pageCSS = `
:root { --accent: #0F9E99; --border: #CBD5E1; --bg: #EFE9E0; }
body { margin: 0; font-family: 'Inter', sans-serif; background: var(--bg); color: #1E293B; }
header { background: #fff; padding: 1rem 2rem; border-bottom: 1px solid var(--border); }
header h1 { margin: 0; font-size: 1.25rem; color: var(--accent); }
main { display: grid; grid-template-columns: 360px 1fr; gap: 1rem; padding: 1rem; }
fieldset { border: 1px solid var(--border); border-radius: 0.5rem; background: #fff; margin: 0 0 1rem; }
label { display: block; font-size: 0.85rem; margin: 0.5rem 0 0.25rem; }
textarea, select, input[type=text] { width: 100%; box-sizing: border-box; }
button { background: var(--accent); color: #fff; border: 0; border-radius: 0.25rem; padding: 0.4rem 0.8rem; cursor: pointer; }
button:disabled { opacity: 0.5; }
iframe { width: 100%; height: 70vh; border: 1px solid var(--border); border-radius: 0.5rem; background: #fff; }
pre { background: #1E293B; color: #F8FAFC; padding: 1rem; border-radius: 0.5rem; overflow: auto; max-height: 40vh; }
#status { font-size: 0.85rem; min-height: 1.2em; }
`

const pageJS = `
const $ = (id) => document.getElementById(id);
const status = (msg) => { $('status').textContent = msg; };
const refresh = () => { $('preview').contentWindow.location.reload(); };

async function call(method, url, body, headers) {
  const res = await fetch(url, { method, body, headers });
  const data = await res.json();
  if (!res.ok) throw new Error(data.error || res.statusText);
  return data;
}

async function patch(p) {
  try {
    await call('PATCH', '/api/config', JSON.stringify(p), { 'Content-Type': 'application/json' });
    refresh();
  } catch (e) { status(e.message); }
}

$('generate').addEventListener('click', async () => {
  $('generate').disabled = true;
  status('Generating...');
  try {
    const data = await call('POST', '/api/generate', JSON.stringify({ prompt: $('prompt').value }), { 'Content-Type': 'application/json' });
    status('Content ' + data.result.source + ': ' + data.result.title);
    refresh();
  } catch (e) { status(e.message); }
  $('generate').disabled = false;
});

document.querySelectorAll('[data-group]').forEach((el) => {
  el.addEventListener('change', () => patch({ [el.dataset.group]: { [el.dataset.field]: el.value } }));
});

$('images').addEventListener('change', async () => {
  const form = new FormData();
  for (const f of $('images').files) form.append('images', f);
  try {
    const data = await call('POST', '/api/images', form);
    status('Added ' + data.added + ' image(s)' + (data.skipped.length ? ', skipped ' + data.skipped.map((s) => s.name).join(', ') : ''));
    refresh();
  } catch (e) { status(e.message); }
  $('images').value = '';
});

$('clear-images').addEventListener('click', async () => {
  await call('DELETE', '/api/images');
  refresh();
});

$('reset').addEventListener('click', async () => {
  await call('POST', '/api/config/reset');
  location.reload();
});

$('view-source').addEventListener('click', async () => {
  const res = await fetch('/api/export?format=' + $('format').value);
  $('source').textContent = await res.text();
});

$('download').addEventListener('click', () => {
  location.href = '/api/export/zip?format=' + $('format').value;
});
`

func generatorPage(cfg layout.Configuration, format export.Format) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text("Pagecraft")),
				StyleEl(g.Raw(pageCSS)),
			),
			Body(
				Header(H1(g.Text("Pagecraft layout generator"))),
				Main(
					Aside(
						promptFields(cfg),
						colorFields(cfg),
						fontFields(cfg),
						animationFields(cfg),
						imageFields(),
						exportFields(format),
						P(ID("status")),
					),
					Section(
						IFrame(ID("preview"), Src("/preview"), Title("Preview")),
						Pre(Code(ID("source"))),
					),
				),
				Script(g.Raw(pageJS)),
			),
		),
	})
}

func promptFields(cfg layout.Configuration) g.Node {
	return FieldSet(
		Legend(g.Text("Brand")),
		Label(For("prompt"), g.Text("Describe your brand")),
		Textarea(ID("prompt"), Rows("3"), g.Text(cfg.Content.PromptText)),
		Button(ID("generate"), Type("button"), g.Text("Generate")),
		Button(ID("reset"), Type("button"), g.Text("Reset")),
	)
}

func field(group, name, label, inputType, value string) g.Node {
	id := group + "-" + name
	return g.Group([]g.Node{
		Label(For(id), g.Text(label)),
		Input(ID(id), Type(inputType), Value(value), Data("group", group), Data("field", name)),
	})
}

func colorFields(cfg layout.Configuration) g.Node {
	return FieldSet(
		Legend(g.Text("Colors")),
		field("colorTheme", "primary", "Primary", "color", cfg.ColorTheme.Primary),
		field("colorTheme", "secondary", "Secondary", "color", cfg.ColorTheme.Secondary),
		field("colorTheme", "background", "Background", "color", cfg.ColorTheme.Background),
	)
}

func options(values []string, selected string) g.Node {
	return g.Map(values, func(v string) g.Node {
		return Option(Value(v), g.If(v == selected, Selected()), g.Text(v))
	})
}

func fontSelect(name, label, selected string) g.Node {
	id := "fontStyle-" + name
	return g.Group([]g.Node{
		Label(For(id), g.Text(label)),
		Select(ID(id), Data("group", "fontStyle"), Data("field", name), options(layout.FontCatalog, selected)),
	})
}

func fontFields(cfg layout.Configuration) g.Node {
	return FieldSet(
		Legend(g.Text("Fonts")),
		fontSelect("heading", "Heading", cfg.FontStyle.Heading),
		fontSelect("body", "Body", cfg.FontStyle.Body),
	)
}

func animationFields(cfg layout.Configuration) g.Node {
	styles := make([]string, len(layout.AnimationStyles))
	for i, s := range layout.AnimationStyles {
		styles[i] = string(s)
	}
	return FieldSet(
		Legend(g.Text("Animation")),
		Label(For("animation-style"), g.Text("Style")),
		Select(ID("animation-style"), Data("group", "animation"), Data("field", "style"),
			options(styles, string(cfg.Animation.Preset()))),
		field("animation", "duration", "Duration", "text", cfg.Animation.Duration),
		field("animation", "easing", "Easing", "text", cfg.Animation.Easing),
	)
}

func imageFields() g.Node {
	return FieldSet(
		Legend(g.Text("Product images")),
		Input(ID("images"), Type("file"), Accept("image/*"), Multiple()),
		Button(ID("clear-images"), Type("button"), g.Text("Clear images")),
	)
}

func exportFields(selected export.Format) g.Node {
	names := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		names[i] = string(f)
	}
	return FieldSet(
		Legend(g.Text("Export")),
		Select(ID("format"), options(names, string(selected))),
		Button(ID("view-source"), Type("button"), g.Text("View source")),
		Button(ID("download"), Type("button"), g.Text("Download zip")),
	)
}
