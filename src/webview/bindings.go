package webview

import (
	"context"

	"byoa-assistant/src/clipboard"
	"byoa-assistant/src/network"
	"byoa-assistant/src/vault"
)

// Names under which native functions are exposed to page scripts.
const (
	ClipboardReadText  = "clipboard_readText"
	ClipboardWriteText = "clipboard_writeText"
	ClipboardClear     = "clipboard_clear"
	VaultGetData       = "vault_getData"
	VaultSetData       = "vault_setData"
	VaultDeleteData    = "vault_deleteData"
	VaultHasData       = "vault_hasData"
	NetworkFetch       = "network_fetch"
	AppPasteContent    = "app_pasteContent"
)

// Services are the native capabilities behind the bindings.
type Services struct {
	Clipboard *clipboard.Clipboard
	Vault     *vault.Vault
	Fetcher   *network.Fetcher
	// Paste places content on the clipboard and pastes it into the captured app.
	Paste func(kind, data string) bool
}

// Bindings builds the name -> function table for s. Nil services are skipped.
func Bindings(s Services) map[string]any {
	b := map[string]any{}
	if c := s.Clipboard; c != nil {
		b[ClipboardReadText] = func() string { return c.ReadText() }
		b[ClipboardWriteText] = func(text string) bool { return c.WriteText(text) }
		b[ClipboardClear] = func() bool { return c.Clear() }
	}
	if v := s.Vault; v != nil {
		b[VaultGetData] = func(key string) string {
			value, _ := v.Get(key)
			return value
		}
		b[VaultSetData] = func(key, value string) bool { return v.Store(key, value) }
		b[VaultDeleteData] = func(key string) bool { return v.Delete(key) }
		b[VaultHasData] = func(key string) bool { return v.Has(key) }
	}
	if f := s.Fetcher; f != nil {
		b[NetworkFetch] = func(ctx context.Context, url, options string) string {
			select {
			case out := <-f.FetchAsync(ctx, url, options):
				return out
			case <-ctx.Done():
				return network.ResponseToJSON(network.FetchResponse{
					StatusText: "Network Error",
					Body:       "Network error: " + ctx.Err().Error(),
				})
			}
		}
	}
	if s.Paste != nil {
		b[AppPasteContent] = s.Paste
	}
	return b
}
