// Command shunt converts infix expressions given as arguments, or read line
// by line from standard input, into reverse Polish notation or syntax trees.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/pflag"

	"github.com/quennel/shunt"
)

func main() {
	log.SetFlags(0)
	var (
		tree bool
		dump bool
	)
	pflag.BoolVarP(&tree, "tree", "t", false, "print parenthesized syntax trees instead of RPN")
	pflag.BoolVar(&dump, "repr", false, "dump raw syntax tree structures")
	pflag.Parse()

	exprs := pflag.Args()
	if len(exprs) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			exprs = append(exprs, sc.Text())
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
	}

	for _, e := range exprs {
		switch {
		case dump:
			n, err := shunt.ToAST(e)
			if err != nil {
				log.Fatal(err)
			}
			repr.Println(n)
		case tree:
			n, err := shunt.ToAST(e)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(n.String())
		default:
			seq, err := shunt.ToRPN(e)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(shunt.Tokens(seq))
		}
	}
}
