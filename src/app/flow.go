package app

import "encoding/base64"

// Content kinds accepted by PasteContent.
const (
	ContentText  = "text"
	ContentImage = "image"
)

// onHotkey runs on the event loop. A hidden popup is shown for whatever the
// focused app copies; a visible one follows the cursor.
func (c *Controller) onHotkey() {
	assistant := c.AssistantWindow()
	if assistant == nil {
		return
	}
	if assistant.IsVisible() {
		assistant.Move()
		return
	}

	pid := 0
	if c.deps.Keys != nil {
		pid = c.deps.Keys.FocusedProcess()
	}
	c.setTarget(pid)
	c.copyContent(pid)

	if !c.clipboard.HasString() && !c.clipboard.HasImage() {
		c.log.Warn("unsupported content", "pid", pid)
		return
	}
	assistant.Show()
}

func (c *Controller) copyContent(pid int) {
	c.log.Info("copy content", "pid", pid)
	if pid < 1 {
		return
	}
	if err := c.deps.Keys.Copy(pid); err != nil {
		c.log.Warn("copy failed", "pid", pid, "error", err)
	}
}

// PasteContent puts data on the clipboard and pastes it into the app that
// was focused when the popup opened. kind is "text" or "image" (base64 PNG).
func (c *Controller) PasteContent(kind, data string) bool {
	pid := c.target()
	c.log.Info("paste content", "pid", pid, "kind", kind)
	if pid < 1 || c.deps.Keys == nil {
		return false
	}
	if (kind != ContentText && kind != ContentImage) || data == "" {
		return false
	}

	switch kind {
	case ContentText:
		if !c.clipboard.WriteText(data) {
			return false
		}
	case ContentImage:
		png, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			c.log.Warn("image is not base64", "error", err)
			return false
		}
		if !c.clipboard.WriteImage(png) {
			return false
		}
	}

	if w := c.AssistantWindow(); w != nil {
		w.Hide()
	}
	if err := c.deps.Keys.Paste(pid); err != nil {
		c.log.Warn("paste failed", "pid", pid, "error", err)
		return false
	}
	c.setTarget(0)
	return true
}

func (c *Controller) setTarget(pid int) {
	c.mu.Lock()
	c.targetPID = pid
	c.mu.Unlock()
}

func (c *Controller) target() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.targetPID
}
