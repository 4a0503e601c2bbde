// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import "github.com/danielhkuo/zip-finder/models"

// View is everything the page needs to render one state of a session.
type View struct {
	Theme   Theme
	ZipCode string
	Loading bool
	Error   string
	Result  *models.ZipRecord
}

// NewView combines a theme with a session snapshot.
func NewView(theme Theme, snap Snapshot) View {
	return View{
		Theme:   theme,
		ZipCode: snap.ZipCode,
		Loading: snap.Loading,
		Error:   snap.Error,
		Result:  snap.Result,
	}
}

// ButtonLabel is the search button text for the current state.
func (v View) ButtonLabel() string {
	if v.Loading {
		return LabelSearching
	}
	return LabelSearch
}

// Theme values are fixed strings from this package, never user input.
func styleTag(t Theme) string {
	return `<style>` +
		`:root{--bg:` + t.Background + `;--accent:` + t.Accent + `;--accent-hover:` + t.AccentHover + `;--text:` + t.Text + `;--muted:` + t.Muted + `}` +
		baseCSS +
		`</style>`
}

const baseCSS = `*{box-sizing:border-box}` +
	`body{margin:0;min-height:100vh;display:flex;flex-direction:column;background:var(--bg);color:var(--text);font-family:system-ui,sans-serif}` +
	`main{flex:1;display:flex;align-items:center;justify-content:center;padding:3rem 1rem}` +
	`.container{width:100%;max-width:28rem}` +
	`h1{font-size:2.25rem;text-align:center;margin:0 0 .5rem}` +
	`.subtitle{text-align:center;color:var(--muted);margin:0 0 2rem}` +
	`.card{background:#fff;border-radius:.75rem;padding:2rem;box-shadow:0 10px 15px -3px rgba(0,0,0,.1)}` +
	`label{display:block;font-size:.875rem;font-weight:500;margin-bottom:.5rem}` +
	`input{width:100%;padding:.75rem 1rem;border:1px solid #d1d5db;border-radius:.5rem;margin-bottom:1rem}` +
	`button{width:100%;padding:.75rem;border:0;border-radius:.5rem;background:var(--accent);color:#fff;font-weight:600;cursor:pointer}` +
	`button:hover{background:var(--accent-hover)}` +
	`button:disabled{opacity:.6;cursor:not-allowed}` +
	`.panel{margin-top:1.5rem;padding:1rem;border-radius:.5rem}` +
	`.panel-error{background:#fef2f2;border:1px solid #fecaca;color:#dc2626;font-weight:500}` +
	`.panel-result{background:#f0fdf4;border:1px solid #bbf7d0}` +
	`.label{font-size:.875rem;color:var(--muted);margin:0}` +
	`.value{font-size:1.125rem;font-weight:600;margin:0 0 .75rem}` +
	`footer{padding:1.5rem;text-align:center;color:#6b7280;font-size:.875rem}`

// Disables the button while the browser waits for the next page.
const submitScript = `<script>` +
	`document.getElementById("zip-form").addEventListener("submit",function(){` +
	`var b=document.getElementById("search-button");b.disabled=true;b.textContent="` + LabelSearching + `";});` +
	`</script>`
