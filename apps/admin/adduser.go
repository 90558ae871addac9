package main

import (
	"fmt"

	"github.com/trezcool/eduplatform/core"
	"github.com/trezcool/eduplatform/core/user"
)

// addUser creates a role variant from the provided fields and registers it.
func (cli *commandLine) addUser(id int, name, email, role, grade, pwd string) error {
	nu := user.NewUser{ID: id, Name: name, Email: email, Password: pwd}

	var acct user.Account
	var err error
	switch user.Role(core.CleanString(role, true /* lower */)) {
	case user.RoleAdmin:
		acct, err = cli.svc.CreateAdmin(user.NewAdmin{NewUser: nu})
	case user.RoleTeacher:
		acct, err = cli.svc.CreateTeacher(user.NewTeacher{NewUser: nu})
	case user.RoleStudent:
		acct, err = cli.svc.CreateStudent(user.NewStudent{NewUser: nu, Grade: grade})
	case user.RoleParent:
		acct, err = cli.svc.CreateParent(user.NewParent{NewUser: nu})
	default:
		return fmt.Errorf("%q: no such role", role)
	}
	if err != nil {
		return err
	}
	return cli.reg.Add(acct)
}

// removeUser removes every roster entry matching id.
func (cli *commandLine) removeUser(id int) error {
	if removed := cli.reg.Remove(id); removed == 0 {
		return user.ErrNotFound
	}
	return nil
}

// listUsers prints the profile of every registered user, in registration order.
func (cli *commandLine) listUsers() error {
	for _, acct := range cli.reg.All() {
		p := acct.Profile()
		fmt.Printf("%d\t%s\t%s\t%s\n", p.ID, p.Role, p.Name, p.Email)
	}
	return nil
}
