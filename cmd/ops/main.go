package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"github.com/HungBoGo/hubogo-note/internal/category"
	"github.com/HungBoGo/hubogo-note/internal/ops"
	"github.com/HungBoGo/hubogo-note/internal/task"
)

var (
	okc  = color.New(color.FgGreen)
	errc = color.New(color.FgRed)
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "backup":
		err = cmdBackup(os.Args[2:])
	case "restore":
		err = cmdRestore(os.Args[2:])
	case "export":
		err = cmdExport(os.Args[2:])
	case "import":
		err = cmdImport(os.Args[2:])
	default:
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		errc.Fprintln(os.Stderr, os.Args[1]+" failed:", err)
		os.Exit(1)
	}
}

func cmdBackup(args []string) error {
	fs := flag.NewFlagSet("backup", flag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "path to data directory")
	out := fs.String("out", "", "output archive path (.tar.gz)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *out == "" {
		ts := time.Now().UTC().Format("20060102T150405Z")
		*out = filepath.Join("backups", "hubogo-"+ts+".tar.gz")
	}

	if err := ops.BackupDataDir(*dataDir, *out); err != nil {
		return err
	}
	okc.Println("backup written:", *out)
	return nil
}

func cmdRestore(args []string) error {
	fs := flag.NewFlagSet("restore", flag.ContinueOnError)
	archive := fs.String("archive", "", "input backup archive (.tar.gz)")
	target := fs.String("target-dir", "data-restored", "restore target directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *archive == "" {
		return fmt.Errorf("archive is required")
	}
	if err := ops.RestoreDataDir(*archive, *target); err != nil {
		return err
	}
	okc.Println("restored to:", *target)
	return nil
}

func cmdExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "path to data directory")
	out := fs.String("out", "hubogo-export.json", "output JSON path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	taskRepo, err := task.NewFileRepo(*dataDir, log.Default())
	if err != nil {
		return err
	}
	categoryRepo, err := category.NewFileRepo(*dataDir)
	if err != nil {
		return err
	}

	tasks, err := taskRepo.List(task.ListFilter{})
	if err != nil {
		return err
	}
	categories, err := categoryRepo.List()
	if err != nil {
		return err
	}

	if err := ops.WriteExport(*out, ops.BuildExport(tasks, categories, time.Now())); err != nil {
		return err
	}
	okc.Printf("exported %d tasks, %d categories to %s\n", len(tasks), len(categories), *out)
	return nil
}

func cmdImport(args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "path to data directory")
	in := fs.String("in", "", "input JSON path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("in is required")
	}

	ex, err := ops.ReadExport(*in)
	if err != nil {
		return err
	}

	taskRepo, err := task.NewFileRepo(*dataDir, log.Default())
	if err != nil {
		return err
	}
	categoryRepo, err := category.NewFileRepo(*dataDir)
	if err != nil {
		return err
	}

	if err := taskRepo.ReplaceAll(ex.Tasks); err != nil {
		return err
	}
	if err := categoryRepo.ReplaceAll(ex.Categories); err != nil {
		return err
	}
	okc.Printf("imported %d tasks, %d categories\n", len(ex.Tasks), len(ex.Categories))
	return nil
}

func printUsage() {
	fmt.Println("usage:")
	fmt.Println("  hubogo-ops backup  --data-dir data --out backups/backup.tar.gz")
	fmt.Println("  hubogo-ops restore --archive backups/backup.tar.gz --target-dir data-restored")
	fmt.Println("  hubogo-ops export  --data-dir data --out hubogo-export.json")
	fmt.Println("  hubogo-ops import  --data-dir data --in hubogo-export.json")
}
