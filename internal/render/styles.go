package render

import "resume-builder/internal/model"

// Style tokens per template. The skeleton and section set are identical for
// all three; only typography, spacing and color differ.

const baseCSS = `
* { margin: 0; padding: 0; box-sizing: border-box; }
body { background: #e5e7eb; }
.resume {
  position: relative;
  width: 210mm;
  min-height: 297mm;
  margin: 0 auto;
  background: #ffffff;
  color: #000000;
  padding: 20mm 18mm;
}
.resume-page-break {
  position: absolute;
  left: 0;
  width: 100%;
  height: 10mm;
  background: #e5e7eb;
  border-top: 1px solid #d1d5db;
  border-bottom: 1px solid #d1d5db;
  display: flex;
  align-items: center;
  justify-content: center;
  font-size: 10px;
  color: #6b7280;
  z-index: 50;
}
.entry { margin-bottom: 12px; }
.entry-head { display: flex; justify-content: space-between; align-items: baseline; }
.entry-body { margin-top: 4px; font-size: 13px; white-space: pre-line; }
.entry-link { font-size: 12px; }
.summary, .skills { font-size: 13px; line-height: 1.5; }
`

var templateCSS = map[model.TemplateID]string{
	model.TemplateModern:  modernCSS,
	model.TemplateClassic: classicCSS,
	model.TemplateMinimal: minimalCSS,
}

const modernCSS = `
.resume { font-family: Helvetica, Arial, sans-serif; color: #1f2937; }
.header { border-bottom: 2px solid #2563eb; padding-bottom: 12px; margin-bottom: 20px; }
.name { font-size: 30px; font-weight: 700; color: #1e40af; text-transform: uppercase; letter-spacing: 1px; }
.contact { margin-top: 8px; font-size: 12px; color: #4b5563; }
.section-title { font-size: 15px; font-weight: 700; color: #1d4ed8; text-transform: uppercase; letter-spacing: 2px; border-bottom: 1px solid #e5e7eb; padding-bottom: 3px; margin: 18px 0 10px; }
.entry-title { font-weight: 700; font-size: 14px; }
.entry-subtitle { color: #4b5563; font-size: 13px; }
.entry-date { font-size: 12px; color: #6b7280; font-style: italic; }
`

const classicCSS = `
.resume { font-family: Georgia, 'Times New Roman', serif; color: #111827; }
.header { text-align: center; border-bottom: 2px solid #1f2937; padding-bottom: 18px; margin-bottom: 20px; }
.name { font-size: 26px; font-weight: 700; }
.contact { margin-top: 8px; font-size: 12px; color: #4b5563; }
.section-title { font-size: 16px; font-weight: 700; color: #1f2937; border-bottom: 1px solid #9ca3af; padding-bottom: 3px; margin: 22px 0 12px; }
.entry-title { font-weight: 700; font-size: 14px; }
.entry-subtitle { font-style: italic; font-size: 13px; color: #374151; }
.entry-date { font-size: 12px; color: #4b5563; }
`

const minimalCSS = `
.resume { font-family: Helvetica, Arial, sans-serif; color: #1f2937; }
.header { margin-bottom: 24px; }
.name { font-size: 30px; font-weight: 300; color: #111827; }
.contact { margin-top: 6px; font-size: 12px; color: #6b7280; }
.section-title { font-size: 11px; font-weight: 700; color: #9ca3af; text-transform: uppercase; letter-spacing: 3px; margin: 24px 0 10px; }
.entry-title { font-weight: 500; font-size: 14px; color: #111827; }
.entry-subtitle { color: #6b7280; font-size: 13px; }
.entry-date { font-size: 11px; color: #9ca3af; }
`
