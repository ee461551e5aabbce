package page

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// reloadScript polls the stamp endpoint once a second and reloads the
// page when the served tree changes.
const reloadScript = `<script>
(function () {
  var stamp = null;
  setInterval(function () {
    fetch("/__devserve/stamp")
      .then(function (r) { return r.json(); })
      .then(function (s) {
        if (stamp === null) { stamp = s.stamp; return; }
        if (s.stamp !== stamp) { location.reload(); }
      })
      .catch(function () {});
  }, 1000);
})();
</script>`

// InjectReload appends the reload poller script to the end of the
// document body and returns the rewritten document. Anything that cannot
// be parsed or re-rendered comes back unchanged.
func InjectReload(doc []byte) []byte {
	d, err := goquery.NewDocumentFromReader(bytes.NewReader(doc))
	if err != nil {
		return doc
	}

	body := d.Find("body")
	if body.Length() == 0 {
		return doc
	}
	body.First().AppendHtml(reloadScript)

	// d.Html() だと doctype が落ちるので、ルートノードから描画する
	if len(d.Nodes) == 0 {
		return doc
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, d.Nodes[0]); err != nil {
		return doc
	}
	return buf.Bytes()
}
