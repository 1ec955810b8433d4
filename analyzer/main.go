package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"git.solver4all.com/azaryc2s/cargo"
)

func main() {
	if len(os.Args) < 2 {
		log.Printf("No arguments passed!")
		return
	}
	dirName := os.Args[1]
	dir, err := ioutil.ReadDir(dirName)
	if err != nil {
		log.Printf("Couldn't open directory %s: %s\n", os.Args[1], err.Error())
		return
	}
	fmt.Printf("RunID,Status,Time,Clients,TotalCost,TotalDeterioration,Valid,Comment\n")
	for _, f := range dir {
		fileName := dirName + "/" + f.Name()
		if !strings.Contains(fileName, ".json") {
			continue
		}
		rep, err := cargo.ReadReport(fileName)
		if err != nil {
			log.Printf("Couldn't parse %s: %s\n", f.Name(), err.Error())
			return
		}
		repValid, validComment := cargo.CheckReportValidity(rep)
		comment := rep.Comment
		if !repValid {
			comment = fmt.Sprintf("%s %s", comment, validComment)
		}
		fmt.Printf("%s,%s,%s,%d,%.2f,%.2f,%t,%s\n",
			rep.RunID, rep.Status, rep.Time, len(rep.Assignments),
			rep.TotalCost, rep.TotalDeterioration, repValid, comment)
	}
}
