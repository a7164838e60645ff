package inventory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/inventario-storage/internal/domain/entity"
)

const csvHeader = "Fecha,Producto,Tipo,Cantidad,Usuario,Descripción\n"

// csvDate formatea como "d/M/yyyy, H:mm:ss": día, mes y hora sin cero a la izquierda.
func csvDate(t time.Time) string {
	return t.Format("2/1/2006, ") + strconv.Itoa(t.Hour()) + t.Format(":04:05")
}

// WriteMovementsCSV escribe el historial en orden cronológico. Cada campo va entre comillas
// dobles tal cual, sin escapar comillas ni comas internas.
func (e *Engine) WriteMovementsCSV(ctx context.Context, w io.Writer) error {
	return e.read(ctx, func(doc *entity.Document) error {
		if _, err := io.WriteString(w, csvHeader); err != nil {
			return fmt.Errorf("escribir CSV: %w", err)
		}
		for _, m := range doc.Movements {
			d := detailOf(doc, m)
			_, err := fmt.Fprintf(w, "\"%s\",\"%s\",\"%s\",\"%d\",\"%s\",\"%s\"\n",
				csvDate(m.Date.In(e.loc)),
				d.ProductName, m.Type, m.Quantity, d.UserName, m.Description)
			if err != nil {
				return fmt.Errorf("escribir CSV: %w", err)
			}
		}
		return nil
	})
}

// ExportMovementsCSV devuelve el CSV completo como texto.
func (e *Engine) ExportMovementsCSV(ctx context.Context) (string, error) {
	var buf bytes.Buffer
	if err := e.WriteMovementsCSV(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// EncodeCSVLatin1 transcodifica el CSV a Windows-1252 para hojas de cálculo en español.
// Los caracteres sin representación (emojis, CJK) se sustituyen por 0x1A.
func EncodeCSVLatin1(csv string) ([]byte, error) {
	out, err := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()).String(csv)
	if err != nil {
		return nil, fmt.Errorf("codificar CSV: %w", err)
	}
	return []byte(out), nil
}
