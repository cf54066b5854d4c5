package infrastructure

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"

	"resume-builder/internal/usecase"
)

// exportCloneID names the off-screen working copy of the preview inside the
// headless page.
const exportCloneID = "resume-export-clone"

// ChromedpRasterizer loads the rendered preview into headless Chrome, clones
// the target element into an unconstrained-height container, and captures it
// as one tall bitmap at 2x device scale.
type ChromedpRasterizer struct {
	chromePath string
}

func NewChromedpRasterizer(chromePath string) *ChromedpRasterizer {
	return &ChromedpRasterizer{chromePath: chromePath}
}

func (r *ChromedpRasterizer) Rasterize(ctx context.Context, html, targetID string) (usecase.Capture, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, 60*time.Second)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return usecase.Capture{}, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return usecase.Capture{}, err
	}

	var exists bool
	if err := chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(fmt.Sprintf("document.getElementById(%q) !== null", targetID), &exists),
	); err != nil {
		return usecase.Capture{}, err
	}
	if !exists {
		return usecase.Capture{}, fmt.Errorf("%w: %q", usecase.ErrTargetMissing, targetID)
	}

	// The clone must be detached whatever happens below; a failed capture
	// may leave the tab alive until the allocator context unwinds.
	defer func() {
		cleanupCtx, cancelCleanup := context.WithTimeout(cctx, 5*time.Second)
		defer cancelCleanup()
		_ = chromedp.Run(cleanupCtx, chromedp.Evaluate(removeCloneJS, nil))
	}()

	var cloned bool
	if err := chromedp.Run(runCtx, chromedp.Evaluate(buildCloneJS(targetID), &cloned)); err != nil {
		return usecase.Capture{}, err
	}
	if !cloned {
		return usecase.Capture{}, fmt.Errorf("%w: %q", usecase.ErrTargetMissing, targetID)
	}

	// One layout settle cycle before measuring, so the capture never sees a
	// pre-layout frame.
	var dims []int64
	if err := chromedp.Run(runCtx,
		chromedp.Sleep(100*time.Millisecond),
		chromedp.Evaluate(fmt.Sprintf(
			`(() => { const n = document.getElementById(%q); return [n.scrollWidth, n.scrollHeight]; })()`,
			exportCloneID), &dims),
	); err != nil {
		return usecase.Capture{}, err
	}
	if len(dims) != 2 || dims[0] <= 0 {
		return usecase.Capture{}, fmt.Errorf("clone has no layout box")
	}

	var shot []byte
	if err := chromedp.Run(runCtx,
		chromedp.EmulateViewport(dims[0], dims[1], chromedp.EmulateScale(2)),
		chromedp.Screenshot("#"+exportCloneID, &shot, chromedp.ByID),
	); err != nil {
		return usecase.Capture{}, err
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(shot))
	if err != nil {
		return usecase.Capture{}, fmt.Errorf("decoding capture: %w", err)
	}

	return usecase.Capture{PNG: shot, Width: cfg.Width, Height: cfg.Height}, nil
}

// buildCloneJS deep-clones the target into a working copy at exact A4 width
// and unbounded height, rewrites modern color function values (lab, lch,
// oklab, oklch) to rgba via a 1x1 canvas since the raster step cannot
// interpret them, and strips screen-only decorations. Element screenshots
// cannot clip off-viewport boxes, so the clone overlays the page at the
// origin instead of parking at a negative offset.
func buildCloneJS(targetID string) string {
	return fmt.Sprintf(`(() => {
	const el = document.getElementById(%q);
	if (!el) return false;
	const clone = el.cloneNode(true);
	clone.id = %q;
	clone.style.position = "absolute";
	clone.style.left = "0";
	clone.style.top = "0";
	clone.style.zIndex = "9999";
	clone.style.width = "210mm";
	clone.style.minHeight = "297mm";
	clone.style.height = "auto";
	clone.style.overflow = "visible";
	clone.style.maxWidth = "none";
	clone.style.margin = "0";
	clone.style.background = "#ffffff";
	const toRGBA = (value) => {
		const canvas = document.createElement("canvas");
		canvas.width = 1;
		canvas.height = 1;
		const ctx = canvas.getContext("2d");
		if (!ctx) return value;
		ctx.fillStyle = value;
		ctx.fillRect(0, 0, 1, 1);
		const d = ctx.getImageData(0, 0, 1, 1).data;
		return "rgba(" + d[0] + ", " + d[1] + ", " + d[2] + ", " + (d[3] / 255) + ")";
	};
	const props = ["color", "backgroundColor", "borderTopColor", "borderRightColor",
		"borderBottomColor", "borderLeftColor", "outlineColor", "textDecorationColor"];
	const normalize = (node) => {
		const computed = window.getComputedStyle(node);
		for (const prop of props) {
			const value = computed[prop];
			if (value && (value.includes("lab(") || value.includes("lch(") ||
				value.includes("oklab(") || value.includes("oklch("))) {
				node.style[prop] = toRGBA(value);
			}
		}
		for (const child of node.children) normalize(child);
	};
	document.body.appendChild(clone);
	normalize(clone);
	clone.querySelectorAll(".resume-page-break").forEach((n) => n.remove());
	clone.querySelectorAll(".print-hidden").forEach((n) => n.remove());
	return true;
})()`, targetID, exportCloneID)
}

const removeCloneJS = `(() => {
	const n = document.getElementById("` + exportCloneID + `");
	if (n) n.remove();
	return true;
})()`
