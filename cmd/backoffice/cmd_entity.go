package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/ecommerce-backoffice/internal/backoffice"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain"
)

// command arma "backoffice <entidad> list|create|update|delete".
func (r resource) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   r.name,
		Short: "Administrar " + r.name,
	}
	cmd.AddCommand(r.listCmd(), r.createCmd(), r.updateCmd(), r.deleteCmd())
	return cmd
}

// backoffice <entidad> list --page 0 --size 20 --sort name,desc --q texto
func (r resource) listCmd() *cobra.Command {
	var page, size int
	var sort, search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar " + r.name + " paginado",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := r.open(current, size)
			if err != nil {
				return err
			}
			if err := s.Mount(ctx); err != nil {
				return err
			}
			if sort != "" {
				if err := s.SortBy(ctx, sort); err != nil {
					return err
				}
			}
			if search != "" {
				if err := s.Search(ctx, search); err != nil {
					return err
				}
			}
			if page > 0 {
				if err := s.GoTo(ctx, page); err != nil {
					return err
				}
			}
			return s.table().write(cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "página (desde 0)")
	cmd.Flags().IntVar(&size, "size", 0, "tamaño de página (por defecto BACKOFFICE_PAGE_SIZE)")
	cmd.Flags().StringVar(&sort, "sort", "", "orden: campo[,desc]")
	cmd.Flags().StringVar(&search, "q", "", "texto a buscar")
	return cmd
}

// backoffice <entidad> create --set name=Books --set description=...
func (r resource) createCmd() *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Crear " + r.schema.Entity,
		Long:  "Crear " + r.schema.Entity + ". Campos: " + fieldList(r.schema, backoffice.UpdateOnly),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := r.open(current, 0)
			if err != nil {
				return err
			}
			if err := s.Mount(ctx); err != nil {
				return err
			}
			if err := applySets(sets, s.Set); err != nil {
				return err
			}
			id, err := s.create(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d creado\n", r.schema.Entity, id)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "campo=valor (repetible)")
	return cmd
}

// backoffice <entidad> update ID --set campo=valor
func (r resource) updateCmd() *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Editar " + r.schema.Entity,
		Long:  "Editar " + r.schema.Entity + ". Campos: " + fieldList(r.schema, backoffice.CreateOnly),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			s, err := r.locate(ctx, id)
			if err != nil {
				return err
			}
			if err := applySets(sets, s.EditField); err != nil {
				return err
			}
			if err := s.Save(ctx); err != nil {
				return err
			}
			t := s.table()
			if row, ok := t.find(id); ok {
				t.rows = []backoffice.Row{row}
				t.page, t.total, t.hasMore = 0, 1, false
				return t.write(cmd.OutOrStdout())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d actualizado\n", r.schema.Entity, id)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "campo=valor (repetible)")
	return cmd
}

// backoffice <entidad> delete ID [--yes]
func (r resource) deleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Borrar " + r.schema.Entity,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			s, err := r.locate(ctx, id)
			if err != nil {
				return err
			}
			confirmed := yes
			if !confirmed {
				fmt.Fprintf(cmd.OutOrStdout(), "¿Borrar %s %d? [y/N] ", r.schema.Entity, id)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				confirmed = strings.EqualFold(strings.TrimSpace(answer), "y")
			}
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "cancelado")
				return nil
			}
			if err := s.Delete(ctx, true); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d borrado\n", r.schema.Entity, id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "no pedir confirmación")
	return cmd
}

// locate recorre las páginas hasta tener id en la ventana y abre su diálogo.
func (r resource) locate(ctx context.Context, id int64) (screen, error) {
	s, err := r.open(current, 0)
	if err != nil {
		return nil, err
	}
	if err := s.Mount(ctx); err != nil {
		return nil, err
	}
	for page := 0; ; page++ {
		if page > 0 {
			if err := s.GoTo(ctx, page); err != nil {
				return nil, err
			}
		}
		err := s.Edit(id)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, backoffice.ErrNotInWindow) {
			return nil, err
		}
		if !s.table().hasMore {
			return nil, fmt.Errorf("%s %d: %w", r.schema.Entity, id, domain.ErrNotFound)
		}
	}
}

func applySets(sets []string, set func(name, raw string) error) error {
	for _, kv := range sets {
		name, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("--set %q: se espera campo=valor", kv)
		}
		if err := set(strings.TrimSpace(name), raw); err != nil {
			return err
		}
	}
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("ID inválido: %q", raw)
	}
	return id, nil
}

// fieldList nombres de los campos del esquema, sin los del modo excluido.
func fieldList(s backoffice.Schema, skip backoffice.FieldMode) string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.Mode == skip {
			continue
		}
		if len(f.Options) > 0 {
			names = append(names, f.Name+" ("+strings.Join(f.Options, "|")+")")
			continue
		}
		names = append(names, f.Name)
	}
	return strings.Join(names, ", ")
}
