//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"stopdfa/config"
	"stopdfa/internal/usecase"
)

var engine *usecase.Engine

func main() {
	var err error
	engine, err = usecase.NewEngine(config.DefaultConfig())
	if err != nil {
		js.Global().Get("console").Call("error", "stopdfa: "+err.Error())
		return
	}

	c := make(chan struct{})

	js.Global().Set("stopdfaClassify", js.FuncOf(classifyText))
	js.Global().Set("stopdfaHighlight", js.FuncOf(highlightText))
	js.Global().Set("stopdfaIsStopword", js.FuncOf(isStopword))
	js.Global().Set("stopdfaStopwords", js.FuncOf(listStopwords))

	<-c
}

func classifyText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: stopdfaClassify(text)")
	}

	res := engine.Classifier.Classify(args[0].String())
	return makeResult(map[string]interface{}{
		"tokens":      res.Tokens,
		"occurrences": res.Occurrences,
	})
}

func highlightText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: stopdfaHighlight(text)")
	}

	text := args[0].String()
	lines := usecase.Highlight(text, engine.Classifier.Classify(text))
	return makeResult(map[string]interface{}{
		"lines": lines,
	})
}

func isStopword(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: stopdfaIsStopword(word)")
	}

	word := args[0].String()
	return makeResult(map[string]interface{}{
		"word":     word,
		"stopword": engine.Classifier.IsStopword(word),
	})
}

func listStopwords(this js.Value, args []js.Value) interface{} {
	return makeResult(map[string]interface{}{
		"stopwords": engine.Stopwords,
		"states":    engine.Trie.StateCount(),
	})
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
