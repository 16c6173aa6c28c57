// Package main is a command-line front end to the next-permutation engine.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"nextperm/internal/core/apperror"
	"nextperm/internal/domain/permutation"
	"nextperm/internal/infrastructure/http/v1/dto"
	"nextperm/pkg/logger"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "nextperm",
		Usage:     "print the next greater arrangement of a number's digits",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "debug logging to stderr"},
		},
		Commands: []*cli.Command{
			{
				Name:      "next",
				Usage:     "compute the next permutation of each argument (flags go before the numbers)",
				ArgsUsage: "[--json] <number>...",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "print one JSON object per input"},
				},
				Action: runNext,
			},
		},
	}
}

func runNext(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("at least one number is required")
	}
	// flag parsing stops at the first number, so a late flag arrives as an argument
	for _, arg := range c.Args().Slice() {
		if strings.HasPrefix(arg, "-") && isFlagName(c.Command, arg) {
			return fmt.Errorf("flag %s must come before the numbers", arg)
		}
	}

	log := logger.NewNop()
	if c.Bool("verbose") {
		l, err := logger.New(logger.Config{Level: "debug", Development: true, OutputPaths: []string{"stderr"}})
		if err != nil {
			return err
		}
		log = l
	}
	ctx := logger.WithLogger(c.Context, log)

	svc := permutation.NewService(nil)
	out := c.App.Writer
	enc := json.NewEncoder(out)
	failed := 0

	for _, raw := range c.Args().Slice() {
		res, err := svc.Next(ctx, raw)
		if err != nil {
			failed++
			if c.Bool("json") {
				if encErr := enc.Encode(toErrorResponse(err)); encErr != nil {
					return encErr
				}
				continue
			}
			fmt.Fprintf(c.App.ErrWriter, "%s -> error: %v\n", raw, message(err))
			continue
		}

		resp := dto.FromResult(res)
		if c.Bool("json") {
			if err := enc.Encode(resp); err != nil {
				return err
			}
			continue
		}
		if resp.Found {
			fmt.Fprintf(out, "%s -> %s\n", resp.InputNum, resp.NextPermNum)
		} else {
			fmt.Fprintf(out, "%s -> %s\n", resp.InputNum, resp.Message)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs rejected", failed, c.NArg())
	}
	return nil
}

func isFlagName(cmd *cli.Command, arg string) bool {
	name := strings.TrimLeft(arg, "-")
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			if n == name {
				return true
			}
		}
	}
	return false
}

func toErrorResponse(err error) dto.ErrorResponse {
	if appErr, ok := apperror.AsAppError(err); ok {
		return dto.ErrorResponse{Code: appErr.Code, Message: appErr.Message, Details: appErr.Details}
	}
	return dto.ErrorResponse{Code: apperror.CodeInternal, Message: err.Error()}
}

func message(err error) string {
	if appErr, ok := apperror.AsAppError(err); ok {
		return appErr.Message
	}
	return err.Error()
}
