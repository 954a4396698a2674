package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"bloghub/internal/models"
)

// ReportGenerator renders reports into w.
type ReportGenerator interface {
	ActivityReport(w io.Writer, data ActivityReportData) error
}

type ActivityReportData struct {
	User        *models.User
	Entries     []models.ActivityLog
	GeneratedAt time.Time
}

// ActivityGenerator рисует отчёт шрифтом из FontPath (TTF, UTF-8)
// либо встроенным Helvetica, если путь пустой.
type ActivityGenerator struct {
	FontPath string
	fontName string
}

func NewActivityGenerator(fontPath string) *ActivityGenerator {
	g := &ActivityGenerator{FontPath: fontPath, fontName: "Helvetica"}
	if fontPath != "" {
		g.fontName = "DejaVu"
	}
	return g
}

var actionTitles = map[models.ActivityAction]string{
	models.ActivityAccountVerified: "Account verified",
	models.ActivityPostCreated:     "Post created",
	models.ActivityCommentCreated:  "Comment created",
}

func (g *ActivityGenerator) ActivityReport(w io.Writer, data ActivityReportData) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Activity report", false)
	pdf.SetAuthor("bloghub", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)

	tr := func(s string) string { return s }
	if g.FontPath != "" {
		pdf.AddUTF8Font(g.fontName, "", g.FontPath)
		pdf.AddUTF8Font(g.fontName, "B", g.FontPath)
	} else {
		tr = pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 9)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// ===== Заголовок
	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "Activity report", "", 1, "C", false, 0, "")
	g.hr(pdf)

	if u := data.User; u != nil {
		g.kvLine(pdf, "Name", tr(u.Name))
		g.kvLine(pdf, "Email", tr(u.Email))
		g.kvLine(pdf, "Member since", u.CreatedAt.Format("02.01.2006"))
	}
	g.kvLine(pdf, "Generated", data.GeneratedAt.Format("02.01.2006 15:04"))
	g.kvLine(pdf, "Entries", fmt.Sprintf("%d", len(data.Entries)))
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Таблица
	widths := []float64{45, 55, 35, 35}
	pdf.SetFont(g.fontName, "B", 11)
	for i, h := range []string{"Date", "Action", "Post", "Comment"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(g.fontName, "", 10)
	if len(data.Entries) == 0 {
		pdf.CellFormat(0, 8, "No activity yet.", "1", 1, "C", false, 0, "")
	}
	for _, e := range data.Entries {
		title, ok := actionTitles[e.Action]
		if !ok {
			title = string(e.Action)
		}
		pdf.CellFormat(widths[0], 7, e.CreatedAt.Format("02.01.2006 15:04"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, idOrDash(e.PostID), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, idOrDash(e.CommentID), "1", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}

func idOrDash(id *int64) string {
	if id == nil {
		return "-"
	}
	return fmt.Sprintf("#%d", *id)
}

// === helpers ===

func (g *ActivityGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *ActivityGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}
