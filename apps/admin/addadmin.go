package main

import "context"

func (cli *commandLine) addAdmin(uname, pwd string) error {
	adm, err := cli.admSvc.Provision(context.Background(), uname, pwd)
	if err != nil {
		return err
	}
	logger.Printf("administrator %q created\n", adm.Username)
	return nil
}
