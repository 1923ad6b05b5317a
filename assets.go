package datagrid

import (
	"io/fs"

	"github.com/goliatone/go-datagrid/pkg/renderers/htmlgrid"
)

// Assets exposes the stylesheet and client-side controller script the HTML
// renderer depends on, rooted at the file names themselves (datagrid.css,
// datagrid-processor.js). Mount it under a static route:
//
//	http.Handle("/datagrid/", http.StripPrefix("/datagrid/",
//		http.FileServer(http.FS(datagrid.Assets()))))
func Assets() fs.FS {
	sub, err := fs.Sub(htmlgrid.AssetsFS, "assets")
	if err != nil {
		// The embedded tree always contains assets/.
		panic(err)
	}
	return sub
}
