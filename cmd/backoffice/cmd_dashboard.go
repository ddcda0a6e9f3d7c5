package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/backoffice"
)

var (
	dashThreshold int
	dashLimit     int
	dashPDF       string
)

// backoffice dashboard [--threshold 10] [--limit 1000] [--pdf reporte.pdf]
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Resumen: ingresos, pendientes, totales, pedidos recientes y stock bajo",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		threshold, limit := current.cfg.LowStockThreshold, current.cfg.DashboardLimit
		if cmd.Flags().Changed("threshold") {
			threshold = dashThreshold
		}
		if cmd.Flags().Changed("limit") {
			limit = dashLimit
		}

		data := backoffice.NewDashboard(current.client, limit, threshold, current.notifier).Load(ctx)
		if err := writeDashboard(cmd.OutOrStdout(), data, threshold); err != nil {
			return err
		}

		if dashPDF == "" {
			return nil
		}
		raw, err := current.client.DashboardReport(ctx)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dashPDF, raw, 0o644); err != nil {
			return fmt.Errorf("guardar reporte: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nreporte guardado en %s\n", dashPDF)
		return nil
	},
}

func init() {
	dashboardCmd.Flags().IntVar(&dashThreshold, "threshold", backoffice.DefaultLowStockThreshold, "umbral de stock bajo")
	dashboardCmd.Flags().IntVar(&dashLimit, "limit", backoffice.DefaultDashboardLimit, "máximo de productos y clientes consultados")
	dashboardCmd.Flags().StringVar(&dashPDF, "pdf", "", "además descargar el reporte PDF a este archivo")
}

const unavailable = "no disponible"

// panelText valor del panel o "no disponible" si su consulta falló.
func panelText[V any](p backoffice.Panel[V], format func(V) string) string {
	if !p.OK() {
		return unavailable
	}
	return format(p.Value)
}

func writeDashboard(w io.Writer, d backoffice.DashboardData, threshold int) error {
	loc := time.Local
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total Revenue\t%s\n", panelText(d.TotalRevenue, backoffice.FormatCurrency))
	fmt.Fprintf(tw, "Pending Orders\t%s\n", panelText(d.PendingOrders, func(n int64) string { return strconv.FormatInt(n, 10) }))
	fmt.Fprintf(tw, "Total Products\t%s\n", panelText(d.Products, func(p backoffice.Page[dto.ProductResponse]) string { return strconv.Itoa(p.Total) }))
	fmt.Fprintf(tw, "Total Customers\t%s\n", panelText(d.Customers, func(p backoffice.Page[dto.CustomerResponse]) string { return strconv.Itoa(p.Total) }))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nRecent Orders")
	if !d.RecentOrders.OK() {
		fmt.Fprintln(w, unavailable)
	} else {
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Order #\tStatus\tAmount\tOrder Date")
		for _, o := range d.RecentOrders.Value {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", o.OrderNumber, o.Status, backoffice.FormatCurrency(o.TotalAmount), backoffice.FormatDateTime(o.OrderDate, loc))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "\nLow Stock (<= %d)\n", threshold)
	if !d.LowStock.OK() {
		fmt.Fprintln(w, unavailable)
		return nil
	}
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SKU\tProduct\tStock")
	for _, p := range d.LowStock.Value {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", p.SKU, p.Name, p.StockQuantity)
	}
	return tw.Flush()
}
