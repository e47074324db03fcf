package main

import (
	"fmt"
	"io/ioutil"
	"log"

	"github.com/thiefmaster/midibridge/comm"
	"github.com/thiefmaster/midibridge/monitor"
	"gopkg.in/yaml.v2"
)

type appConfig struct {
	Serial        comm.Config
	Monitor       monitor.Config
	Channels      []int
	Thru          bool
	RunningStatus bool `yaml:"runningStatus"`
}

func (c *appConfig) load(path string) error {
	log.Printf("loading config file: %s\n", path)
	yamlFile, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not open config file: %v", err)
	}
	if err = yaml.UnmarshalStrict(yamlFile, c); err != nil {
		return fmt.Errorf("could not parse config file: %v", err)
	}
	for _, ch := range c.Channels {
		if ch < 0 || ch > 15 {
			return fmt.Errorf("invalid channel %d, must be 0-15", ch)
		}
	}
	return nil
}
