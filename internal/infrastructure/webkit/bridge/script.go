package bridge

import (
	"encoding/json"
	"fmt"
)

// Message types posted by Script.
const (
	TypeShowNotification = "show_notification"
	TypeResourceError    = "resource_error"
)

// Script returns the document-start user script that exposes
// window[bridgeName] with showNotification and showToast, and reports
// sub-resource load errors.
func Script(bridgeName string) string {
	name, _ := json.Marshal(bridgeName)
	handler, _ := json.Marshal(MessageHandlerName)
	return fmt.Sprintf(bridgeTemplate, string(name), string(handler), TypeShowNotification, TypeResourceError)
}

const bridgeTemplate = `(() => {
  const name = %[1]s;
  if (window.__codeora_bridge_loaded) return;
  window.__codeora_bridge_loaded = true;

  const post = (type, payload) => {
    try {
      window.webkit.messageHandlers[%[2]s].postMessage(JSON.stringify({ type, payload }));
    } catch (_) {}
  };

  const bridge = {
    showNotification(message) {
      post('%[3]s', { message: message == null ? '' : String(message) });
    },
    showToast(message) {
      bridge.showNotification(message);
    },
  };
  Object.defineProperty(window, name, { value: Object.freeze(bridge), configurable: false, writable: false });

  window.addEventListener('error', (event) => {
    const target = event.target;
    if (!target || target === window) return;
    const url = target.currentSrc || target.src || target.href || '';
    if (url) post('%[4]s', { url, tag: String(target.tagName || '').toLowerCase() });
  }, true);
})();`
