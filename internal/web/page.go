package web

import (
	"strings"

	"github.com/fr4nk3nst1ner/jobanalysis/internal/app"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
)

// indexHTML builds the viewer page. The page only talks to the /api endpoints of this server.
func indexHTML(defaultSort models.SortSpec) string {
	r := strings.NewReplacer(
		"__TITLE_ASC__", selected(defaultSort.Title == models.Ascending),
		"__TITLE_DESC__", selected(defaultSort.Title == models.Descending),
		"__POSTED_ASC__", selected(defaultSort.Posted == models.Ascending),
		"__POSTED_DESC__", selected(defaultSort.Posted == models.Descending),
		"__EMPTY__", app.EmptyMessage,
	)
	return r.Replace(pageTemplate)
}

func selected(ok bool) string {
	if ok {
		return " selected"
	}
	return ""
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Job Analysis</title>
	<style>
		:root {
			--bg-primary: #0a0a0f;
			--bg-card: #16161f;
			--bg-card-hover: #1c1c28;
			--accent-primary: #00ff88;
			--text-primary: #e8e8ed;
			--text-secondary: #8888a0;
			--border-color: #2a2a3a;
			--danger: #ff4757;
		}
		body { background: var(--bg-primary); color: var(--text-primary); font-family: sans-serif; margin: 0; padding: 2rem; }
		h1 { color: var(--accent-primary); }
		.controls { display: flex; flex-wrap: wrap; gap: 0.75rem; margin-bottom: 1rem; }
		select, button, input { background: var(--bg-card); color: var(--text-primary); border: 1px solid var(--border-color); padding: 0.4rem 0.6rem; }
		button { cursor: pointer; }
		.job { background: var(--bg-card); border: 1px solid var(--border-color); margin: 0.4rem 0; padding: 0.6rem 0.8rem; }
		.job:hover { background: var(--bg-card-hover); }
		.job-title { cursor: pointer; margin: 0; }
		.job-posted { color: var(--text-secondary); font-size: 0.85rem; }
		#status { color: var(--text-secondary); margin-bottom: 1rem; }
		#error { color: var(--danger); }
		.modal { display: none; position: fixed; inset: 0; background: rgba(0, 0, 0, 0.6); }
		.modal-content { background: var(--bg-card); border: 1px solid var(--border-color); margin: 10% auto; max-width: 640px; padding: 1.5rem; }
		.close { float: right; cursor: pointer; font-size: 1.5rem; }
		#modal-detail { white-space: pre-wrap; }
	</style>
</head>
<body>
	<h1>Job Analysis</h1>

	<div class="controls">
		<input type="file" id="file-upload" accept=".json,application/json">
	</div>

	<div class="controls">
		<select id="filter-type"><option value="">Select Type</option></select>
		<select id="filter-level"><option value="">Select Level</option></select>
		<select id="filter-skill"><option value="">Select Skill</option></select>
		<button id="filter-btn">Filter</button>
	</div>

	<div class="controls">
		<select id="sort-title">
			<option value="asc"__TITLE_ASC__>Title A-Z</option>
			<option value="desc"__TITLE_DESC__>Title Z-A</option>
		</select>
		<select id="sort-posted">
			<option value="desc"__POSTED_DESC__>Newest first</option>
			<option value="asc"__POSTED_ASC__>Oldest first</option>
		</select>
		<button id="apply-sorting">Sort</button>
	</div>

	<div id="error"></div>
	<div id="status"></div>
	<div id="job-listings"></div>

	<div id="job-modal" class="modal">
		<div class="modal-content">
			<span id="close-modal" class="close">&times;</span>
			<h2 id="modal-title"></h2>
			<p id="modal-type"></p>
			<p id="modal-level"></p>
			<p id="modal-skill"></p>
			<p id="modal-posted"></p>
			<p id="modal-detail"></p>
		</div>
	</div>

	<script>
		const $ = (id) => document.getElementById(id);

		function fillSelect(el, label, values) {
			el.innerHTML = '';
			const first = document.createElement('option');
			first.value = '';
			first.textContent = label;
			el.appendChild(first);
			(values || []).forEach((v) => {
				const opt = document.createElement('option');
				opt.value = v;
				opt.textContent = v;
				el.appendChild(opt);
			});
		}

		function render(data) {
			$('error').textContent = '';
			$('status').textContent = data.total + ' jobs loaded ' + data.loaded + (data.source ? ' from ' + data.source : '');
			const list = $('job-listings');
			list.innerHTML = '';
			if (!data.items || data.items.length === 0) {
				const p = document.createElement('p');
				p.textContent = data.message || '__EMPTY__';
				list.appendChild(p);
				return;
			}
			data.items.forEach((job) => {
				const div = document.createElement('div');
				div.className = 'job';
				const title = document.createElement('p');
				title.className = 'job-title';
				title.textContent = job.title + ' - ' + job.type + ' (' + job.level + ')';
				title.addEventListener('click', () => showDetail(job.id));
				const posted = document.createElement('span');
				posted.className = 'job-posted';
				posted.textContent = job.posted;
				div.appendChild(title);
				div.appendChild(posted);
				list.appendChild(div);
			});
		}

		async function call(url, opts) {
			const res = await fetch(url, opts);
			const body = await res.json();
			if (!res.ok) {
				$('error').textContent = body.error || 'Request failed';
				if (opts && opts.method === 'POST') { alert(body.error); }
				return null;
			}
			return body;
		}

		$('file-upload').addEventListener('change', async (event) => {
			const file = event.target.files[0];
			if (!file) { return; }
			const form = new FormData();
			form.append('file', file);
			const data = await call('/api/upload', { method: 'POST', body: form });
			if (!data) { return; }
			fillSelect($('filter-type'), 'Select Type', data.options.types);
			fillSelect($('filter-level'), 'Select Level', data.options.levels);
			fillSelect($('filter-skill'), 'Select Skill', data.options.skills);
			render(data);
		});

		$('filter-btn').addEventListener('click', async () => {
			const q = new URLSearchParams({ type: $('filter-type').value, level: $('filter-level').value, skill: $('filter-skill').value });
			const data = await call('/api/jobs?' + q.toString());
			if (data) { render(data); }
		});

		$('apply-sorting').addEventListener('click', async () => {
			const q = new URLSearchParams({ sort_title: $('sort-title').value, sort_posted: $('sort-posted').value });
			const data = await call('/api/jobs?' + q.toString());
			if (data) { render(data); }
		});

		async function showDetail(id) {
			const d = await call('/api/jobs/' + encodeURIComponent(id));
			if (!d) { return; }
			$('modal-title').textContent = d.title;
			$('modal-type').textContent = 'Type: ' + d.type;
			$('modal-level').textContent = 'Level: ' + d.level;
			$('modal-skill').textContent = 'Skill: ' + d.skill;
			$('modal-detail').textContent = 'Details: ' + d.detail;
			$('modal-posted').textContent = 'Posted: ' + d.posted;
			$('job-modal').style.display = 'block';
		}

		$('close-modal').addEventListener('click', () => { $('job-modal').style.display = 'none'; });
		window.addEventListener('click', (event) => {
			if (event.target === $('job-modal')) { $('job-modal').style.display = 'none'; }
		});

		call('/api/jobs').then((data) => {
			if (!data) { return; }
			fillSelect($('filter-type'), 'Select Type', data.options.types);
			fillSelect($('filter-level'), 'Select Level', data.options.levels);
			fillSelect($('filter-skill'), 'Select Skill', data.options.skills);
			render(data);
		});
	</script>
</body>
</html>
`
