// inventario es la herramienta de operación del motor de inventario.
//
// Uso:
//
//	inventario init                          crea el documento (con datos demo si INVENTORY_DEMO_DATA=true)
//	inventario report                        imprime el reporte completo en JSON
//	inventario low-stock                     lista los productos en o bajo su stock mínimo
//	inventario export-csv [archivo] [--latin1]  exporta el historial de movimientos
//	inventario export-pdf archivo            genera el reporte de inventario en PDF
//
// El backend y las reglas se configuran por entorno (ver pkg/config).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/inventario-storage/internal/application/inventory"
	"github.com/jhoicas/inventario-storage/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/inventario-storage/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-storage/pkg/config"
	"github.com/jhoicas/inventario-storage/pkg/logger"
)

const usage = `uso: inventario <init|report|low-stock|export-csv|export-pdf> [argumentos]`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:       cfg.App.Env,
		Level:     cfg.Log.Level,
		File:      cfg.Log.File,
		MaxSizeMB: cfg.Log.MaxSizeMB,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, os.Args[1], os.Args[2:]); err != nil {
		log.Error().Err(err).Str("cmd", os.Args[1]).Msg("comando fallido")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, cmd string, args []string) error {
	store, closeStore, err := backend.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn().Err(err).Msg("cerrar backend")
		}
	}()

	loc, err := location(cfg.Inventory.Timezone)
	if err != nil {
		return err
	}

	engine := inventory.NewEngine(store,
		inventory.WithKey(cfg.Storage.Key),
		inventory.WithLogger(log),
		inventory.WithLocation(loc),
		inventory.WithNegativeAdjustments(cfg.Inventory.AllowNegativeAdjustments),
		inventory.WithDemoData(cfg.Inventory.DemoData),
	)
	if err := engine.Initialize(ctx); err != nil {
		return err
	}

	switch cmd {
	case "init":
		log.Info().Str("driver", cfg.Storage.Driver).Str("key", cfg.Storage.Key).Msg("inventario listo")
		return nil
	case "report":
		return printReport(ctx, engine, os.Stdout)
	case "low-stock":
		return printLowStock(ctx, engine, os.Stdout)
	case "export-csv":
		return exportCSV(ctx, engine, args)
	case "export-pdf":
		return exportPDF(ctx, engine, cfg.App.Name, args)
	default:
		return fmt.Errorf("comando desconocido %q\n%s", cmd, usage)
	}
}

func location(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("INVENTORY_TIMEZONE %q: %w", name, err)
	}
	return loc, nil
}

func printReport(ctx context.Context, engine *inventory.Engine, w io.Writer) error {
	report, err := engine.BuildInventoryReport(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func printLowStock(ctx context.Context, engine *inventory.Engine, w io.Writer) error {
	products, err := engine.GetProductsWithLowStock(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "Todos los productos tienen stock suficiente")
		return err
	}
	for _, p := range products {
		if _, err := fmt.Fprintf(w, "%-12s %-30s stock=%d min=%d\n", p.Code, p.Name, p.Stock, p.MinStock); err != nil {
			return err
		}
	}
	return nil
}

func exportCSV(ctx context.Context, engine *inventory.Engine, args []string) error {
	fs := flag.NewFlagSet("export-csv", flag.ContinueOnError)
	latin1 := fs.Bool("latin1", false, "codificar en Windows-1252")
	if err := fs.Parse(reorderFlags(args)); err != nil {
		return err
	}

	csv, err := engine.ExportMovementsCSV(ctx)
	if err != nil {
		return err
	}
	data := []byte(csv)
	if *latin1 {
		if data, err = inventory.EncodeCSVLatin1(csv); err != nil {
			return err
		}
	}

	if fs.NArg() == 0 {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(fs.Arg(0), data, 0o644)
}

func exportPDF(ctx context.Context, engine *inventory.Engine, company string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("export-pdf: falta el archivo de salida")
	}
	pdf, err := engine.ExportReportPDF(ctx, infrapdf.NewMarotoReportGenerator(company))
	if err != nil {
		return err
	}
	return os.WriteFile(args[0], pdf, 0o644)
}

// reorderFlags mueve las banderas antes de los posicionales: flag deja de parsear en el primero.
func reorderFlags(args []string) []string {
	var flags, rest []string
	for _, a := range args {
		if len(a) > 1 && a[0] == '-' {
			flags = append(flags, a)
			continue
		}
		rest = append(rest, a)
	}
	return append(flags, rest...)
}
