package extract

import (
	"fmt"
	"time"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/klippa-app/go-pdfium/webassembly"

	"github.com/pdflens/pdflens/pkg/wordbox"
)

const pdfiumInstanceTimeout = 30 * time.Second

// pdfiumDoc owns a webassembly pdfium runtime and one open document. Both
// pdfium-backed sources embed it; each source gets its own runtime so the
// approaches never share a handle.
type pdfiumDoc struct {
	pool     pdfium.Pool
	instance pdfium.Pdfium
	document references.FPDF_DOCUMENT
	pages    int
}

func openPdfiumDoc(path string) (*pdfiumDoc, error) {
	pool, err := webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  1,
		MaxTotal: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("init pdfium runtime: %w", err)
	}

	instance, err := pool.GetInstance(pdfiumInstanceTimeout)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("acquire pdfium instance: %w", err)
	}

	doc, err := instance.OpenDocument(&requests.OpenDocument{FilePath: &path})
	if err != nil {
		instance.Close()
		pool.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	count, err := instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: doc.Document,
	})
	if err != nil {
		instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{Document: doc.Document})
		instance.Close()
		pool.Close()
		return nil, fmt.Errorf("page count of %s: %w", path, err)
	}

	return &pdfiumDoc{
		pool:     pool,
		instance: instance,
		document: doc.Document,
		pages:    count.PageCount,
	}, nil
}

func (d *pdfiumDoc) PageCount() int {
	return d.pages
}

func (d *pdfiumDoc) PageSize(i int) (wordbox.PageSize, error) {
	size, err := d.instance.FPDF_GetPageSizeByIndex(&requests.FPDF_GetPageSizeByIndex{
		Document: d.document,
		Index:    i,
	})
	if err != nil {
		return wordbox.PageSize{}, fmt.Errorf("page %d size: %w", i+1, err)
	}
	return wordbox.PageSize{Width: size.Width, Height: size.Height}, nil
}

// page builds the by-index page request for page i.
func (d *pdfiumDoc) page(i int) requests.Page {
	return requests.Page{
		ByIndex: &requests.PageByIndex{
			Document: d.document,
			Index:    i,
		},
	}
}

func (d *pdfiumDoc) Close() error {
	_, err := d.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: d.document,
	})
	if cerr := d.instance.Close(); err == nil {
		err = cerr
	}
	if cerr := d.pool.Close(); err == nil {
		err = cerr
	}
	return err
}
