package sink

import (
	"bytes"
	"fmt"
)

const (
	popupCSS = `
    .popup { pointer-events: none; transition: opacity 0.3s ease; }
    .popup[visibility="hidden"] { opacity: 0; }
    .popup[visibility="visible"] { opacity: 1; }`

	popupJS = `
    (function() {
      const root = (document.currentScript && document.currentScript.closest('svg')) || document.querySelector('svg');
      const vb = root.viewBox.baseVal;
      root.querySelectorAll('.card').forEach(el => {
        const id = el.dataset.symbol;
        const popup = root.querySelector('.popup[data-for="' + id + '"]');
        if (!popup) return;
        el.addEventListener('mouseenter', () => {
          const box = el.getBBox();
          const pb = popup.getBBox();
          let x = box.x + box.width/2 - pb.width/2;
          let y = box.y - pb.height - 8;
          if (y < vb.y + 10) y = box.y + box.height + 8;
          if (y + pb.height > vb.y + vb.height - 10) y = vb.y + vb.height - pb.height - 10;
          x = Math.max(vb.x + 10, Math.min(x, vb.x + vb.width - pb.width - 10));
          popup.setAttribute('transform', 'translate(' + x.toFixed(1) + ',' + y.toFixed(1) + ')');
          popup.setAttribute('visibility', 'visible');
        });
        el.addEventListener('mouseleave', () => popup.setAttribute('visibility', 'hidden'));
      });
    })();`
)

func renderPopupScript(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", popupCSS)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", popupJS)
}
