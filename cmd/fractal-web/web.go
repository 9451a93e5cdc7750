package main

// indexHTML is the inline viewer page. It opens the websocket, sends a
// configuration patch on every control change, and swaps in each returned
// PNG frame. Window bounds are sent in plane units; zoom math stays client-side.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>fractal-web</title>
<style>
  body { font-family: monospace; background: #111; color: #ddd; margin: 1em; }
  #frame { border: 1px solid #444; cursor: crosshair; }
  .controls { margin: 0.5em 0; }
  label { margin-right: 1em; }
  input { width: 5em; }
</style>
</head>
<body>
<div class="controls">
  <label>iterations <input id="iters" type="number" value="400"></label>
  <label>hue <input id="hue" type="number" value="0"></label>
  <label>variant
    <select id="variant">
      <option value="standard">standard</option>
      <option value="parameterized">parameterized</option>
    </select>
  </label>
  <label>c = <input id="cre" type="number" step="0.01" value="-0.8"> +
    <input id="cim" type="number" step="0.01" value="0.156">i</label>
  <button id="reset">reset</button>
  <span id="status"></span>
</div>
<img id="frame" src="/render.png" alt="render">
<script>
(function () {
  var img = document.getElementById('frame');
  var status = document.getElementById('status');
  var win = { x_min: -2.5, x_max: 2.5, y_min: -2.5, y_max: 2.5 };
  var ws = new WebSocket('ws://' + location.host + '/ws');
  ws.binaryType = 'blob';

  ws.onmessage = function (ev) {
    if (typeof ev.data === 'string') {
      status.textContent = JSON.parse(ev.data).error || '';
      return;
    }
    status.textContent = '';
    img.src = URL.createObjectURL(ev.data);
  };

  function send(patch) {
    if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(patch));
  }

  function currentPatch() {
    var patch = {
      max_iterations: parseInt(document.getElementById('iters').value, 10),
      base_color: { hue: parseFloat(document.getElementById('hue').value), saturation: 100, brightness: 100 },
      variant: document.getElementById('variant').value,
      plane_window: win
    };
    if (patch.variant === 'parameterized') {
      patch.parameter_constant = {
        re: parseFloat(document.getElementById('cre').value),
        im: parseFloat(document.getElementById('cim').value)
      };
    }
    return patch;
  }

  ['iters', 'hue', 'variant', 'cre', 'cim'].forEach(function (id) {
    document.getElementById(id).addEventListener('change', function () { send(currentPatch()); });
  });

  document.getElementById('reset').addEventListener('click', function () {
    win = { x_min: -2.5, x_max: 2.5, y_min: -2.5, y_max: 2.5 };
    send({ reset: true });
  });

  // Click to zoom 2x around the clicked point.
  img.addEventListener('click', function (ev) {
    var rect = img.getBoundingClientRect();
    var fx = (ev.clientX - rect.left) / rect.width;
    var fy = (ev.clientY - rect.top) / rect.height;
    var cx = win.x_min + fx * (win.x_max - win.x_min);
    var cy = win.y_min + fy * (win.y_max - win.y_min);
    var hw = (win.x_max - win.x_min) / 4;
    var hh = (win.y_max - win.y_min) / 4;
    win = { x_min: cx - hw, x_max: cx + hw, y_min: cy - hh, y_max: cy + hh };
    send(currentPatch());
  });
})();
</script>
</body>
</html>
`
