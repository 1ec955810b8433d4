package cargo

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// NewReport creates a report shell stamped with a run id and the system it
// was computed on.
func NewReport(comment string) AllocationReport {
	hostStat, _ := host.Info()
	cpuStat, _ := cpu.Info()
	vmStat, _ := mem.VirtualMemory()

	var info SysInfo
	if hostStat != nil {
		info.Platform = hostStat.Platform
	}
	if len(cpuStat) > 0 {
		info.CPU = cpuStat[0].ModelName
	}
	if vmStat != nil {
		info.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}

	return AllocationReport{
		RunID:   uuid.NewString(),
		System:  info,
		Comment: comment,
	}
}

func WriteReport(path string, rep *AllocationReport) error {
	jsonRep, err := json.MarshalIndent(rep, "", "\t")
	if err != nil {
		return err
	}
	jsonRep = []byte(SanitizeJsonArrayLineBreaks(string(jsonRep)))
	return ioutil.WriteFile(path, jsonRep, 0644)
}

func ReadReport(path string) (*AllocationReport, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rep AllocationReport
	if err := json.Unmarshal(raw, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}
