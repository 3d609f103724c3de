package cmds

import (
	"fmt"
	"reflect"
)

// Command is a word of the command line. A command with Func consumes one
// following word per Func argument; a command with Subs dispatches the next word.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Args returns the placeholders of the words consumed by the command, like <int>.
func (c *Command) Args() (ret []string) {
	if !c.Func.IsValid() {
		return nil
	}
	fnType := c.Func.Type()
	for i := range fnType.NumIn() {
		ret = append(ret, "<"+fnType.In(i).String()+">")
	}
	return
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	fnType := fnValue.Type()
	if fnType.IsVariadic() {
		panic(fmt.Errorf("must not be variadic: %v", fnType))
	}
	switch fnType.NumOut() {
	case 0:
	case 1:
		if fnType.Out(0) != errorType {
			panic(fmt.Errorf("must return error, got %v", fnType.Out(0)))
		}
	default:
		panic(fmt.Errorf("must return 0 or 1 value"))
	}

	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
