package main

import (
	"fmt"
	"os"
	"sort"

	"space-rogue/pkg/mapparse"
	"space-rogue/pkg/worldgen"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "blueprints":
		names := make([]string, 0, len(worldgen.Blueprints))
		for name := range worldgen.Blueprints {
			names = append(names, name)
		}
		sort.Strings(names)
		failed := false
		for _, name := range names {
			if err := check(worldgen.Blueprints[name].Map, mapparse.DefaultTable(), name); err != nil {
				fmt.Printf("%s: %v\n", name, err)
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
	case "file":
		if len(os.Args) < 3 {
			fmt.Println("Usage: mapcheck file <map.txt> [table.yaml]")
			return
		}
		table := mapparse.DefaultTable()
		if len(os.Args) > 3 {
			loaded, err := mapparse.LoadTable(os.Args[3])
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			table = loaded
		}
		data, err := os.ReadFile(os.Args[2])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := check(string(data), table, os.Args[2]); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	default:
		printHelp()
	}
}

// check разбирает карту, печатает ее объекты и убеждается, что сериализация дает тот же текст.
func check(raw string, table mapparse.Table, name string) error {
	ast, err := mapparse.Parse(raw, table)
	if err != nil {
		return err
	}
	out, err := mapparse.SerializeAst(ast, table)
	if err != nil {
		return err
	}
	again, err := mapparse.Parse(out, table)
	if err != nil {
		return fmt.Errorf("reparse: %w", err)
	}
	for i, cell := range ast.List() {
		if again.Get(i) != cell {
			return fmt.Errorf("round trip differs at %v", ast.IndexToCoord(i))
		}
	}

	fmt.Printf("%s: %dx%d OK\n", name, ast.Width(), ast.Height())
	for _, obj := range mapparse.Objects(ast) {
		fmt.Printf("  %v %v\n", obj.At, obj.Kind)
	}
	return nil
}

func printHelp() {
	fmt.Println(`Map Check - проверка карт кораблей
Commands:
  blueprints                  - разобрать все встроенные чертежи
  file <map.txt> [table.yaml] - разобрать карту из файла (со своей таблицей символов)`)
}
