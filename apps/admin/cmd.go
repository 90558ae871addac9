package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/eduplatform/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	svc *user.Service
	reg user.Registry
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  adduser -id ID -name NAME -email EMAIL -role ROLE [-grade GRADE] - register a user; the password will be prompted next")
	fmt.Println("  removeuser -id ID - remove a user from the roster")
	fmt.Println("  listusers - print all registered users")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ExitOnError)
	addUserID := addUserCmd.Int("id", 0, "The user's unique id.")
	addUserName := addUserCmd.String("name", "", "The user's full name.")
	addUserEmail := addUserCmd.String("email", "", "The user's email.")
	addUserRole := addUserCmd.String("role", "", "One of admin, teacher, student, parent.")
	addUserGrade := addUserCmd.String("grade", "", "The student's class label, eg. 9-A (student role only).")

	removeUserCmd := flag.NewFlagSet("removeuser", flag.ExitOnError)
	removeUserID := removeUserCmd.Int("id", 0, "The user's unique id.")

	switch args[1] {
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserID == 0 || *addUserName == "" || *addUserEmail == "" || *addUserRole == "" {
			addUserCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(*addUserID, *addUserName, *addUserEmail, *addUserRole, *addUserGrade, string(pwd))
	case "removeuser":
		if err := removeUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *removeUserID == 0 {
			removeUserCmd.Usage()
			return errHelp
		}
		return cli.removeUser(*removeUserID)
	case "listusers":
		return cli.listUsers()
	default:
		cli.printUsage()
		return errHelp
	}
}
